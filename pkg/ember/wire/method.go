package wire

// Method IDs, grounded on pkg/shockwave/http11/method.go's numeric
// dispatch. The router (ember/routing) only ever registers the five
// methods spec.md §4.F names (GET, POST, PUT, PATCH, DELETE); HEAD,
// OPTIONS, CONNECT and TRACE are still recognized by the reader so
// that an unsupported-but-well-formed request gets a routing miss
// (404/405) rather than a parse failure.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGET
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodPATCH
	MethodHEAD
	MethodOPTIONS
	MethodCONNECT
	MethodTRACE
)

var methodNames = map[Method]string{
	MethodGET:     "GET",
	MethodPOST:    "POST",
	MethodPUT:     "PUT",
	MethodDELETE:  "DELETE",
	MethodPATCH:   "PATCH",
	MethodHEAD:    "HEAD",
	MethodOPTIONS: "OPTIONS",
	MethodCONNECT: "CONNECT",
	MethodTRACE:   "TRACE",
}

var methodIDs = map[string]Method{
	"GET":     MethodGET,
	"POST":    MethodPOST,
	"PUT":     MethodPUT,
	"DELETE":  MethodDELETE,
	"PATCH":   MethodPATCH,
	"HEAD":    MethodHEAD,
	"OPTIONS": MethodOPTIONS,
	"CONNECT": MethodCONNECT,
	"TRACE":   MethodTRACE,
}

// ParseMethod returns the Method for a request-line token, or
// MethodUnknown if it is not a recognized HTTP method.
func ParseMethod(s string) Method {
	if id, ok := methodIDs[s]; ok {
		return id
	}
	return MethodUnknown
}

// String returns the wire representation of m, or "" for MethodUnknown.
func (m Method) String() string {
	return methodNames[m]
}
