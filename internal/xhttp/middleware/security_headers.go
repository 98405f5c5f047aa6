package middleware

import (
	"net/http"

	"github.com/izhairtrend/hairtrend/internal/xhttp"
)

const permissionsPolicy = "Permissions-Policy"

// SecurityHeaders sets the static hardening headers. The site has no
// sensors, payments or geolocation, so all of those are denied.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(xhttp.XContentTypeOpts, "nosniff")
		h.Set(xhttp.XFrameOpts, "DENY")
		h.Set(xhttp.XXSSProtection, "1; mode=block")
		h.Set(xhttp.ReferrerPolicy, "strict-origin-when-cross-origin")
		h.Set(permissionsPolicy, "camera=(), microphone=(), geolocation=(), payment=()")
		next.ServeHTTP(w, r)
	})
}
