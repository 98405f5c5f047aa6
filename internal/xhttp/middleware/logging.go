package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/izhairtrend/hairtrend/internal/xcontext"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

// Logging writes one line per request. Page handlers record the route they
// matched and the locale they rendered, which land on the same line.
// Must run AFTER Logger so the line carries the request ID.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, page := xcontext.WithPage(r.Context())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		attrs := []any{
			xslog.RequestGroup(r),
			xslog.ResponseGroup(rec.status, time.Since(start)),
		}
		if page.Route != "" {
			attrs = append(attrs, xslog.Route(page.Route))
		}
		if page.Locale != "" {
			attrs = append(attrs, xslog.Locale(page.Locale.String()))
		}

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		xslog.FromContext(ctx).Log(ctx, level, "http request", attrs...)
	})
}
