package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/xcontext"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	stack := []func(http.Handler) http.Handler{mark("first"), mark("second")}
	final := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	})

	// a stack shared by two chains keeps its order
	for range 2 {
		order = order[:0]
		h := Chain(final, stack...)
		req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		want := "first,second,handler"
		if got := strings.Join(order, ","); got != want {
			t.Errorf("order = %s, want %s", got, want)
		}
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := xslog.NewLogger(&buf, xslog.LevelInfo)

	var seenID string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = xcontext.GetRequestID(r.Context())
		xslog.FromContext(r.Context()).InfoContext(r.Context(), "inside")
	}), RequestID(), Logger(logger))

	rec := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	if seenID == "" {
		t.Fatal("request id missing from context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Errorf("X-Request-ID = %q, want %q", got, seenID)
	}
	if !strings.Contains(buf.String(), seenID) {
		t.Errorf("log output missing request id: %s", buf.String())
	}
}

func TestRecoveryReturns500(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}), Recovery)

	rec := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestSecurityAndVersionHeaders(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), SecurityHeaders, ServerVersion)

	rec := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	for _, key := range []string{xhttp.XContentTypeOpts, xhttp.XFrameOpts, permissionsPolicy, xhttp.XServerVersion} {
		if rec.Header().Get(key) == "" {
			t.Errorf("missing header %s", key)
		}
	}
}

func TestShutdownContextMarksCancelledRequests(t *testing.T) {
	t.Parallel()

	var marked bool
	h := ShutdownContext(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		marked = xcontext.IsShutdownInProgress(r.Context())
	}))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	if !marked {
		t.Error("expected shutdown flag on cancelled request")
	}
	if got := rec.Header().Get(xhttp.Connection); got != "close" {
		t.Errorf("Connection = %q, want close", got)
	}
}

func TestLoggingCarriesPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []string
		absent  []string
	}{
		{
			name: "page handler",
			handler: func(w http.ResponseWriter, r *http.Request) {
				xcontext.SetPage(r.Context(), "shop", locale.LT)
				w.WriteHeader(http.StatusOK)
			},
			want: []string{`"route":"shop"`, `"locale":"lt"`, `"level":"INFO"`, `"request_id":`},
		},
		{
			name: "plain handler",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			want:   []string{`"msg":"http request"`},
			absent: []string{`"route"`, `"locale"`},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				xcontext.SetPage(r.Context(), "home", locale.EN)
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: []string{`"level":"ERROR"`, `"locale":"en"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := Chain(tt.handler, RequestID(), Logger(xslog.NewLogger(&buf, xslog.LevelInfo)), Logging)
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil))

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log missing %s: %s", w, out)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(out, a) {
					t.Errorf("log has %s: %s", a, out)
				}
			}
		})
	}
}
