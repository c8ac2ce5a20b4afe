// Package routing implements ember's route registration and matching:
// an exact-path fast path plus a compiled-pattern fallback for
// templated paths like /users/{id:int}.
//
// Grounded on source/include/Router.h's RoutePattern/RouteEntry split
// (exact map + ordered pattern list per method), translated from
// std::regex to Go's regexp.
package routing

import (
	"regexp"
	"strconv"
	"strings"
)

// varNamePattern matches a legal {var} or {var:type} placeholder name.
var varNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// varKind is a capture's type, used by Match to additionally validate
// int captures.
type varKind int

const (
	varString varKind = iota
	varInt
)

type patternVar struct {
	name string
	kind varKind
}

// Pattern is a compiled route template.
type Pattern struct {
	Template string
	re       *regexp.Regexp
	vars     []patternVar
}

// CompilePattern compiles a template like "/users/{id:int}/posts/{slug}"
// into a Pattern. Literal runs are regex-escaped; {var} becomes
// ([^/]+); {var:int} becomes ([0-9]+). The compiled expression is
// anchored with ^...$, matching Router.h's RoutePattern::compile.
func CompilePattern(template string) (*Pattern, error) {
	var sb strings.Builder
	sb.WriteByte('^')

	var vars []patternVar
	i := 0
	for i < len(template) {
		if template[i] == '{' {
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return nil, errMalformedTemplate(template)
			}
			end += i
			inner := template[i+1 : end]

			name := inner
			kind := varString
			if colon := strings.IndexByte(inner, ':'); colon >= 0 {
				name = inner[:colon]
				switch inner[colon+1:] {
				case "int":
					kind = varInt
				case "string", "":
					kind = varString
				default:
					return nil, errMalformedTemplate(template)
				}
			}
			if !varNamePattern.MatchString(name) {
				return nil, errMalformedTemplate(template)
			}

			vars = append(vars, patternVar{name: name, kind: kind})
			if kind == varInt {
				sb.WriteString(`([0-9]+)`)
			} else {
				sb.WriteString(`([^/]+)`)
			}
			i = end + 1
			continue
		}

		sb.WriteString(regexp.QuoteMeta(string(template[i])))
		i++
	}
	sb.WriteByte('$')

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}
	return &Pattern{Template: template, re: re, vars: vars}, nil
}

// Match attempts to match path against the pattern, returning the
// captured path variables on success. An {x:int} capture that doesn't
// parse as a signed decimal integer fails the match, per spec.md
// §4.F's match rule.
func (p *Pattern) Match(path string) (map[string]string, bool) {
	groups := p.re.FindStringSubmatch(path)
	if groups == nil {
		return nil, false
	}
	vars := make(map[string]string, len(p.vars))
	for i, v := range p.vars {
		val := groups[i+1]
		if v.kind == varInt {
			if _, err := strconv.ParseInt(val, 10, 64); err != nil {
				return nil, false
			}
		}
		vars[v.name] = val
	}
	return vars, true
}

type malformedTemplateError string

func (e malformedTemplateError) Error() string { return string(e) }

func errMalformedTemplate(template string) error {
	return malformedTemplateError("routing: malformed route template: " + template)
}
