// Package strings holds small string and slice helpers shared across the platform
package strings

// IfEmpty returns def when v is empty, otherwise v
func IfEmpty[T any](v, def []T) []T {
	if len(v) == 0 {
		return def
	}
	return v
}

// FirstNonEmpty returns the first non-empty string in vals
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// MustString panics when s is empty; what names the value for the panic message
func MustString(s, what string) string {
	if s == "" {
		panic("strings: empty " + what)
	}
	return s
}

// MustPrefix panics unless p is empty or a rooted path like "/assistant"
func MustPrefix(p string) string {
	if p == "" {
		return p
	}
	if p[0] != '/' {
		panic("strings: prefix must start with '/': " + p)
	}
	return p
}
