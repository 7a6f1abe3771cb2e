// Package slug derives kebab-case package identifiers from namespaces.
//
// A namespace is an import-path-like string ("github.com/acme/BlogTools").
// The slug is the last path segment converted to kebab-case and is used as
// the package's configuration and publish key.
package slug

import (
	"strings"
	"unicode"
)

// Derive returns the kebab-case slug for a namespace.
//
// The last path segment wins: "github.com/acme/BlogTools" -> "blog-tools".
// An empty namespace yields an empty slug.
func Derive(namespace string) string {
	namespace = strings.Trim(namespace, "/")
	if namespace == "" {
		return ""
	}
	if idx := strings.LastIndex(namespace, "/"); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	return Kebab(namespace)
}

// Kebab converts a single identifier to kebab-case.
//
// CamelCase humps, underscores, spaces, and dots all become dashes;
// consecutive separators collapse. "MyHTTPPackage" -> "my-http-package".
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == ' ' || r == '.' || r == '-':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
		case unicode.IsUpper(r):
			if i > 0 && boundaryBefore(runes, i) && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "-")
}

// boundaryBefore reports whether a word boundary precedes runes[i].
// Handles acronym runs: the boundary in "HTTPServer" sits before "Server".
func boundaryBefore(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}
