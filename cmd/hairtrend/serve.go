package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/izhairtrend/hairtrend/internal/config"
	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/web"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web edition",
		Long:  "Serves the five views as HTML under BASE_PATH until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			logger := xslog.NewLogger(os.Stdout, cfg.LogLevel)
			ctx := xslog.WithLogger(cmd.Context(), logger)

			catalog, err := locale.Load()
			if err != nil {
				return fmt.Errorf("failed to load locales: %w", err)
			}

			srv, err := web.New(web.Config{
				Linker:  cfg.Linker(),
				Catalog: catalog,
				Assets:  assets.New(cfg.AssetsDir),
				Locale:  cfg.Lang,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			if err := srv.Run(ctx, cfg.Addr()); err != nil {
				logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
				return err
			}
			return nil
		},
	}
}
