package rest

import "github.com/yourusername/ember/pkg/ember/wire"

// Context bundles the per-request state a handler sees: the decoded
// request, the response being built, and the path variables the
// router captured. Grounded on HttpServer.h's per-connection context
// object (a fresh one per request, never shared across connections
// per spec.md §5).
type Context struct {
	Request  *wire.Request
	Response *wire.Response
	Vars     *PathVars
}

// NewContext returns a Context wired up for a single request/response
// pair.
func NewContext(req *wire.Request, resp *wire.Response, vars *PathVars) *Context {
	return &Context{Request: req, Response: resp, Vars: vars}
}
