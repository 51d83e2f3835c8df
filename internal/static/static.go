package static

import (
	"io/fs"
	"net/http"
)

// Header values sent with every response to keep clients and
// intermediaries from caching anything served during development.
const (
	cacheControl = "no-store, no-cache, must-revalidate"
	pragma       = "no-cache"
	expires      = "0"
)

// NoCache wraps next so every response carries the cache-busting header
// triplet. The headers are set before delegation, so error responses
// (404, 500) carry them too.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", cacheControl)
		h.Set("Pragma", pragma)
		h.Set("Expires", expires)
		next.ServeHTTP(w, r)
	})
}

// Handler serves files from root with caching disabled, substituting the
// default document for requests to the bare root path. Everything else
// (Content-Type by extension, 404s, directory listings) is delegated to
// the standard file server.
func Handler(root fs.FS, index string) http.Handler {
	files := http.FileServerFS(root)

	return NoCache(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFileFS(w, r, root, index)
			return
		}
		files.ServeHTTP(w, r)
	}))
}
