package middleware

import (
	"net/http"

	"github.com/izhairtrend/hairtrend/internal/xcontext"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
)

// ShutdownContext marks requests that arrive after the base context was
// cancelled and asks the client not to reuse the connection.
func ShutdownContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if ctx.Err() != nil {
			ctx = xcontext.SetShutdownInProgress(ctx, true)
			r = r.WithContext(ctx)
			w.Header().Set(xhttp.Connection, "close")
		}

		next.ServeHTTP(w, r)
	})
}
