package routing

import (
	"errors"

	"github.com/yourusername/ember/pkg/ember/rest"
	"github.com/yourusername/ember/pkg/ember/wire"
)

// ErrMatchMethodNotAllowed and ErrMatchNotFound are Match's two miss
// outcomes, per spec.md §4.F: 405 when the method has no routes
// registered at all, 404 when it has routes but none match the path.
var (
	ErrMatchMethodNotAllowed = errors.New("routing: method not allowed")
	ErrMatchNotFound         = errors.New("routing: not found")
)

type patternRoute struct {
	pattern *Pattern
	handler rest.Handler
}

// Router holds, per method, an exact-path map and an ordered pattern
// list, grounded on Router.h's RoutePattern/RouteEntry split.
type Router struct {
	exact    map[wire.Method]map[string]rest.Handler
	patterns map[wire.Method][]patternRoute
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{
		exact:    make(map[wire.Method]map[string]rest.Handler),
		patterns: make(map[wire.Method][]patternRoute),
	}
}

var routableMethods = []wire.Method{
	wire.MethodGET, wire.MethodPOST, wire.MethodPUT, wire.MethodPATCH, wire.MethodDELETE,
}

// Route registers handler for path under all five routable methods
// (GET, POST, PUT, PATCH, DELETE), matching spec.md §4.F's
// route(path, handler) registration call.
func (rt *Router) Route(path string, handler rest.Handler) error {
	for _, m := range routableMethods {
		if err := rt.Handle(m, path, handler); err != nil {
			return err
		}
	}
	return nil
}

// Handle registers handler for a single method and path template. A
// template containing no {placeholder} is stored in the exact-path
// map; otherwise it is compiled and appended to that method's pattern
// list, which is kept sorted by template string and which Match scans
// in that order (a lexicographic tie-break — SPEC_FULL.md resolves spec.md §4.F's ambiguous
// "accept the first full match" wording this way, grounded on the
// reference's std::map<RoutePattern, Handler> where RoutePattern's
// operator< orders lexicographically by template string; an ordered
// slice sorted at insertion time reproduces that ordering without
// reaching for a sorted container on every registration).
func (rt *Router) Handle(method wire.Method, path string, handler rest.Handler) error {
	if !hasPlaceholder(path) {
		m, ok := rt.exact[method]
		if !ok {
			m = make(map[string]rest.Handler)
			rt.exact[method] = m
		}
		m[path] = handler
		return nil
	}

	p, err := CompilePattern(path)
	if err != nil {
		return err
	}
	list := rt.patterns[method]
	i := 0
	for i < len(list) && list[i].pattern.Template < path {
		i++
	}
	list = append(list, patternRoute{})
	copy(list[i+1:], list[i:])
	list[i] = patternRoute{pattern: p, handler: handler}
	rt.patterns[method] = list
	return nil
}

func hasPlaceholder(path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] == '{' {
			return true
		}
	}
	return false
}

// Match resolves method+path to a handler and populated path-variable
// bag, or one of ErrMatchMethodNotAllowed/ErrMatchNotFound per
// spec.md §4.F's miss semantics.
func (rt *Router) Match(method wire.Method, path string) (rest.Handler, *rest.PathVars, error) {
	hasAnyRoute := len(rt.exact[method]) > 0 || len(rt.patterns[method]) > 0
	if !hasAnyRoute {
		return nil, nil, ErrMatchMethodNotAllowed
	}

	if h, ok := rt.exact[method][path]; ok {
		return h, rest.NewPathVars(), nil
	}

	for _, pr := range rt.patterns[method] {
		if vars, ok := pr.pattern.Match(path); ok {
			bag := rest.NewPathVars()
			for name, value := range vars {
				bag.Set(name, value)
			}
			return pr.handler, bag, nil
		}
	}

	return nil, nil, ErrMatchNotFound
}
