package wire

import "sync"

// Pooling here deliberately drops pkg/shockwave/http11/pool.go's
// PoolStrategyStandard/PoolStrategyPerCPU split: that package offers a
// per-CPU sharded pool as an alternative to sync.Pool for
// GOMAXPROCS-heavy workloads, but a single standard sync.Pool already
// removes the steady-state allocation this server cares about, and the
// simpler type keeps Request/Response construction obvious to callers
// embedding ember. See DESIGN.md.

var requestPool = sync.Pool{New: func() any { return NewRequest() }}

// AcquireRequest returns a pooled Request ready to be populated by a
// Parser.
func AcquireRequest() *Request {
	return requestPool.Get().(*Request)
}

// ReleaseRequest resets req and returns it to the pool. Callers must
// not retain req or anything derived from it (Params, uploaded file
// data, etc.) after calling this.
func ReleaseRequest(req *Request) {
	req.Reset()
	requestPool.Put(req)
}

var responsePool = sync.Pool{New: func() any { return NewResponse() }}

// AcquireResponse returns a pooled, reset Response.
func AcquireResponse() *Response {
	return responsePool.Get().(*Response)
}

// ReleaseResponse resets resp and returns it to the pool.
func ReleaseResponse(resp *Response) {
	resp.Reset()
	responsePool.Put(resp)
}

var parserPool = sync.Pool{New: func() any { return NewParser() }}

// AcquireParser returns a pooled Parser.
func AcquireParser() *Parser {
	return parserPool.Get().(*Parser)
}

// ReleaseParser returns a Parser to the pool. Parser carries no
// per-request state, so no reset is needed.
func ReleaseParser(p *Parser) {
	parserPool.Put(p)
}
