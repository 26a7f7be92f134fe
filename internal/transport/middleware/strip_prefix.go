package middleware

import (
	"net/http"
	"strings"
)

// StripPrefix removes a leading path segment before routing:
// with prefix "/api", "/api" becomes "/" and "/api/items" becomes "/items",
// while "/apix" is left alone. An empty prefix disables stripping.
func StripPrefix(prefix string) Middleware {
	prefix = strings.TrimSuffix(prefix, "/")

	return func(next http.Handler) http.Handler {
		if prefix == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path, ok := trimSegment(r.URL.Path, prefix)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			r2 := r.Clone(r.Context())
			r2.URL.Path = path
			if r.URL.RawPath != "" {
				if raw, rawOK := trimSegment(r.URL.RawPath, prefix); rawOK {
					r2.URL.RawPath = raw
				} else {
					r2.URL.RawPath = ""
				}
			}
			next.ServeHTTP(w, r2)
		})
	}
}

func trimSegment(path, prefix string) (string, bool) {
	if path == prefix {
		return "/", true
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):], true
	}
	return path, false
}
