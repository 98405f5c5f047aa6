package web

import (
	"net/http"
	"strings"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/version"
	"github.com/izhairtrend/hairtrend/internal/xcontext"
	"github.com/izhairtrend/hairtrend/internal/xerrors"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	xhttp.SetHeaderNoStore(w)
	if s.shutdown.Draining() {
		xhttp.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "draining", Version: version.Get()})
		return
	}
	xhttp.WriteOK(w, healthResponse{Status: "ok", Version: version.Get()})
}

func (s *Server) handleAssets() http.Handler {
	files := http.StripPrefix(s.linker.Asset(""), http.FileServerFS(s.assets.FS()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xhttp.SetHeaderCacheMaxAge(w, assetMaxAge)
		files.ServeHTTP(w, r)
	})
}

// handlePage renders a view. Under the hash strategy only the base document
// exists; every other path is a not found page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	l := s.resolveLocale(w, r)
	w.Header().Add(xhttp.Vary, xhttp.AcceptLanguage)
	w.Header().Add(xhttp.Vary, "Cookie")

	route, status := s.match(r.URL.Path)
	xcontext.SetPage(ctx, route.String(), l)
	self := r.URL.Path
	if route == router.NotFound {
		self = s.linker.Root()
	}

	doc := s.newDocument(s.catalog.Dictionary(l), route, self)
	if route == router.NotFound {
		doc.Missing = r.URL.Path
		xslog.FromContext(ctx).InfoContext(ctx, "no route", xslog.Route(r.URL.Path))
	}

	body, err := render(doc)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithCause(err)))
		return
	}
	xhttp.WriteHTML(w, status, body)
}

func (s *Server) match(path string) (router.Route, int) {
	rest, ok := s.linker.Strip(path)
	if !ok {
		return router.NotFound, http.StatusNotFound
	}

	if s.linker.Strategy() == router.StrategyHash {
		if strings.Trim(rest, "/") != "" {
			return router.NotFound, http.StatusNotFound
		}
		return router.Home, http.StatusOK
	}

	route, ok := router.Match(rest)
	if !ok {
		return router.NotFound, http.StatusNotFound
	}
	return route, http.StatusOK
}
