// Package strutil provides the small set of string primitives the rest
// of ember builds on: ASCII trimming, percent-decoding, and
// application/x-www-form-urlencoded splitting.
package strutil

import "strings"

// Trim strips leading and trailing ASCII whitespace (space, tab, CR, LF,
// vertical tab, form feed) from s.
func Trim(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// PercentDecode decodes a percent-encoded string: '+' becomes a space,
// "%HH" (two hex digits) becomes the decoded byte, and any malformed
// '%' escape is passed through unchanged.
func PercentDecode(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				hi, okHi := hexVal(s[i+1])
				lo, okLo := hexVal(s[i+2])
				if okHi && okLo {
					b.WriteByte(byte(hi<<4 | lo))
					i += 2
					continue
				}
			}
			b.WriteByte('%')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// ParseURLEncoded parses an application/x-www-form-urlencoded payload
// (or a query string) into key/value pairs, in the order encountered.
// Pairs are split on '&', each pair on the first '='; keys and values
// are trimmed and percent-decoded. Empty segments are skipped. Callers
// that need last-write-wins semantics should fold the result into a
// map themselves (ember/container.StringMap does this for query params
// and forms).
func ParseURLEncoded(s string) []KV {
	if s == "" {
		return nil
	}

	var out []KV
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}

		var key, value string
		if eq := strings.IndexByte(pair, '='); eq >= 0 {
			key = pair[:eq]
			value = pair[eq+1:]
		} else {
			key = pair
		}

		key = PercentDecode(Trim(key))
		value = PercentDecode(Trim(value))
		out = append(out, KV{Key: key, Value: value})
	}
	return out
}

// KV is an ordered key/value pair, as produced by ParseURLEncoded.
type KV struct {
	Key   string
	Value string
}
