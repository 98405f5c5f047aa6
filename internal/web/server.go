// Package web serves the site's views as server-rendered HTML.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/xhttp/middleware"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

const (
	defaultGracePeriod = 2 * time.Second
	shutdownTimeout    = 30 * time.Second
	assetMaxAge        = 24 * time.Hour
)

type Config struct {
	Linker  router.Linker
	Catalog *locale.Catalog
	Assets  *assets.Store
	Locale  locale.Locale
	Logger  *slog.Logger

	// GracePeriod is how long /healthz reports draining before the listener
	// closes.
	GracePeriod time.Duration
}

type Server struct {
	linker        router.Linker
	catalog       *locale.Catalog
	assets        *assets.Store
	defaultLocale locale.Locale
	logger        *slog.Logger
	shutdown      *ShutdownCoordinator
}

func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}
	if cfg.Linker.Base() == "" {
		cfg.Linker = router.NewLinker("/", router.StrategyPath)
	}
	if cfg.Assets == nil {
		cfg.Assets = assets.New("")
	}
	if cfg.Locale == "" {
		cfg.Locale = locale.Default
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = defaultGracePeriod
	}

	return &Server{
		linker:        cfg.Linker,
		catalog:       cfg.Catalog,
		assets:        cfg.Assets,
		defaultLocale: cfg.Locale,
		logger:        cfg.Logger,
		shutdown:      NewShutdownCoordinator(cfg.GracePeriod),
	}, nil
}

func (s *Server) Shutdown() *ShutdownCoordinator { return s.shutdown }

// Handler is the full middleware-wrapped route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET "+s.linker.Asset(""), s.handleAssets())
	mux.HandleFunc("GET /", s.handlePage)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger(s.logger),
		middleware.Logging,
		middleware.ShutdownContext,
		middleware.Gzip,
		middleware.SecurityHeaders,
		middleware.ServerVersion,
	)
}

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains: the health
// check fails for the grace period before in-flight requests are finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return s.shutdown.BaseContext()
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			xslog.Addr(ln.Addr().String()),
			slog.String("base", s.linker.Base()),
			slog.String("routing", s.linker.Strategy().String()),
		)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.InfoContext(ctx, "shutdown signal received, draining")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		s.shutdown.InitiateShutdown(shutdownCtx)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		s.logger.InfoContext(ctx, "server stopped")
		return nil
	})

	return g.Wait()
}
