package middleware

import (
	"net/http"

	"github.com/izhairtrend/hairtrend/internal/version"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
)

// ServerVersion stamps every response with the running build.
func ServerVersion(next http.Handler) http.Handler {
	v := version.Get()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(xhttp.XServerVersion, v)
		next.ServeHTTP(w, r)
	})
}
