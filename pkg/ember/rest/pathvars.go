package rest

import (
	"errors"
	"strconv"

	"github.com/yourusername/ember/pkg/ember/container"
)

// ErrPathVarMissing is returned by GetInt when name was not captured
// by the matched route.
var ErrPathVarMissing = errors.New("rest: path variable not present")

// PathVars is the per-request bag of path variables the router
// populates on a successful match (e.g. {id} -> "42").
//
// Grounded on source/include/HttpServer.h's PathVars: get()/getInt()
// return defaulted/erroring values, while MustGetInt panics, matching
// the original's get/getInt-vs-exception split (SPEC_FULL.md's
// resolution of GetInt's failure semantics — the C++ PathVars::getInt
// throws std::out_of_range or a std::stoi parse exception; here both
// become a returned error, with MustGetInt as the panicking escape
// hatch for handlers that already validated the route pattern).
type PathVars struct {
	values *container.StringMap
}

// NewPathVars returns an empty PathVars.
func NewPathVars() *PathVars {
	return &PathVars{values: container.NewStringMap()}
}

// Set stores the captured value for name. Called by the router.
func (v *PathVars) Set(name, value string) { v.values.Set(name, value) }

// Reset clears v for reuse from a pool.
func (v *PathVars) Reset() { v.values.Reset() }

// Get returns the raw captured string for name.
func (v *PathVars) Get(name string) (string, bool) { return v.values.Get(name) }

// GetString returns the raw captured string for name, or def if
// absent, mirroring SafeMap's defaulted get.
func (v *PathVars) GetString(name, def string) string { return v.values.GetDefault(name, def) }

// GetInt parses the captured value for name as a signed decimal
// integer. It returns ErrPathVarMissing if name wasn't captured, or a
// *strconv.NumError if present but not numeric.
func (v *PathVars) GetInt(name string) (int64, error) {
	raw, ok := v.values.Get(name)
	if !ok {
		return 0, ErrPathVarMissing
	}
	return strconv.ParseInt(raw, 10, 64)
}

// MustGetInt is GetInt's panicking counterpart, for handlers on a
// route whose pattern already guarantees name is a valid {*:int}
// capture.
func (v *PathVars) MustGetInt(name string) int64 {
	n, err := v.GetInt(name)
	if err != nil {
		panic(err)
	}
	return n
}
