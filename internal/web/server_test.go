package web

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

var catalog = locale.MustLoad()

func newServer(t *testing.T, base string, strategy router.Strategy) *Server {
	t.Helper()

	s, err := New(Config{
		Linker:  router.NewLinker(base, strategy),
		Catalog: catalog,
		Assets: assets.NewFS(fstest.MapFS{
			assets.LogoSVG: &fstest.MapFile{Data: []byte("<svg/>")},
		}),
		Logger:      xslog.Discard(),
		GracePeriod: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, target string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPageHeadings(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/", router.StrategyPath).Handler()

	for _, l := range locale.All() {
		dict := catalog.Dictionary(l)
		for _, r := range router.NavRoutes() {
			rec := get(t, h, r.Path()+"?lang="+l.String())
			if rec.Code != http.StatusOK {
				t.Fatalf("%s %s: status = %d", l, r, rec.Code)
			}
			body := rec.Body.String()
			want := "<h1>" + dict.Nav[r.NavIndex()] + "</h1>"
			if !strings.Contains(body, want) {
				t.Errorf("%s %s: missing heading %q", l, r, want)
			}
			if !strings.Contains(body, `<html lang="`+l.String()+`">`) {
				t.Errorf("%s %s: wrong document language", l, r)
			}
		}
	}
}

func TestLocaleResolution(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/", router.StrategyPath).Handler()
	taglines := map[locale.Locale]string{}
	for _, l := range locale.All() {
		taglines[l] = catalog.Dictionary(l).Tagline
	}

	tests := []struct {
		name   string
		target string
		mutate func(*http.Request)
		want   locale.Locale
	}{
		{
			name:   "default",
			target: "/",
			want:   locale.RU,
		},
		{
			name:   "accept language",
			target: "/",
			mutate: func(r *http.Request) { r.Header.Set(xhttp.AcceptLanguage, "lt-LT,lt;q=0.9,en;q=0.5") },
			want:   locale.LT,
		},
		{
			name:   "unsupported accept language",
			target: "/",
			mutate: func(r *http.Request) { r.Header.Set(xhttp.AcceptLanguage, "de-DE") },
			want:   locale.RU,
		},
		{
			name:   "cookie beats accept language",
			target: "/",
			mutate: func(r *http.Request) {
				r.Header.Set(xhttp.AcceptLanguage, "lt")
				r.AddCookie(&http.Cookie{Name: langCookie, Value: "en"})
			},
			want: locale.EN,
		},
		{
			name:   "query beats cookie",
			target: "/?lang=lt",
			mutate: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: langCookie, Value: "en"}) },
			want:   locale.LT,
		},
		{
			name:   "bad query ignored",
			target: "/?lang=xx",
			mutate: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: langCookie, Value: "en"}) },
			want:   locale.EN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mutate []func(*http.Request)
			if tt.mutate != nil {
				mutate = append(mutate, tt.mutate)
			}
			rec := get(t, h, tt.target, mutate...)
			if !strings.Contains(rec.Body.String(), taglines[tt.want]) {
				t.Errorf("page not rendered in %s", tt.want)
			}
		})
	}
}

func TestLangQuerySetsCookie(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/", router.StrategyPath).Handler()
	rec := get(t, h, "/shop?lang=en")

	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == langCookie {
			found = c
		}
	}
	if found == nil {
		t.Fatal("lang cookie not set")
	}
	if found.Value != "en" {
		t.Errorf("cookie = %q, want en", found.Value)
	}

	rec = get(t, h, "/shop")
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie set without a lang query")
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/", router.StrategyPath).Handler()
	rec := get(t, h, "/blog/2024?lang=en")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	dict := catalog.Dictionary(locale.EN)
	for _, want := range []string{dict.NotFound, dict.NotFoundHint, "/blog/2024"} {
		if !strings.Contains(body, want) {
			t.Errorf("not found page missing %q", want)
		}
	}
}

func TestBasePath(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/hairtrend", router.StrategyPath).Handler()

	if rec := get(t, h, "/hairtrend/education"); rec.Code != http.StatusOK {
		t.Errorf("inside base: status = %d", rec.Code)
	}
	if rec := get(t, h, "/education"); rec.Code != http.StatusNotFound {
		t.Errorf("outside base: status = %d, want 404", rec.Code)
	}

	body := get(t, h, "/hairtrend/").Body.String()
	for _, want := range []string{`href="/hairtrend/portfolio"`, `href="/hairtrend/assets/iz-logo.svg"`, `href="/hairtrend/?lang=en"`} {
		if !strings.Contains(body, want) {
			t.Errorf("home missing %s", want)
		}
	}
}

func TestHashStrategy(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/hairtrend", router.StrategyHash).Handler()

	rec := get(t, h, "/hairtrend/?lang=en")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	dict := catalog.Dictionary(locale.EN)
	for _, want := range []string{
		`href="/hairtrend/#/shop"`,
		`id="/shop"`,
		`id="home"`,
		"<h1>" + dict.Nav[3] + "</h1>",
		`href="/hairtrend/?lang=lt#/shop"`,
		`href="/hairtrend/?lang=ru#/contacts"`,
		`href="/hairtrend/?lang=lt"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("hash document missing %s", want)
		}
	}
	if n := strings.Count(body, `class="switcher"`); n != len(router.Routes()) {
		t.Errorf("%d language switchers, want one per view", n)
	}

	if rec := get(t, h, "/hairtrend/shop"); rec.Code != http.StatusNotFound {
		t.Errorf("path route under hash strategy: status = %d, want 404", rec.Code)
	}
}

func TestRequestLogCarriesPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := New(Config{
		Linker:  router.NewLinker("/", router.StrategyPath),
		Catalog: catalog,
		Logger:  xslog.NewLogger(&buf, xslog.LevelInfo),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	get(t, s.Handler(), "/education?lang=lt")

	var line map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		if err := go_json.Unmarshal(raw, &entry); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
		if entry["msg"] == "http request" {
			line = entry
		}
	}
	if line == nil {
		t.Fatalf("no request line in %s", buf.String())
	}
	if line["route"] != "education" || line["locale"] != "lt" {
		t.Errorf("route = %v, locale = %v", line["route"], line["locale"])
	}
	if id, _ := line["request_id"].(string); id == "" {
		t.Error("request line has no request id")
	}
}

func TestAssets(t *testing.T) {
	t.Parallel()

	h := newServer(t, "/", router.StrategyPath).Handler()

	rec := get(t, h, "/assets/iz-logo.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "<svg/>" {
		t.Errorf("body = %q", got)
	}
	if got := rec.Header().Get(xhttp.CacheControl); !strings.Contains(got, "max-age") {
		t.Errorf("Cache-Control = %q", got)
	}

	if rec := get(t, h, "/assets/iz-hero.png"); rec.Code != http.StatusNotFound {
		t.Errorf("missing asset: status = %d, want 404", rec.Code)
	}
}

func TestHealthDraining(t *testing.T) {
	t.Parallel()

	s := newServer(t, "/", router.StrategyPath)
	h := s.Handler()

	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp healthResponse
	if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}

	s.Shutdown().InitiateShutdown(t.Context())

	if rec := get(t, h, "/healthz"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("draining status = %d, want 503", rec.Code)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	s := newServer(t, "/", router.StrategyPath)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	var resp *http.Response
	for range 50 {
		resp, err = http.Get("http://" + ln.Addr().String() + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
