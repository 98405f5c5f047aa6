package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/izhairtrend/hairtrend/internal/config"
	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/paths"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/starfield"
	"github.com/izhairtrend/hairtrend/internal/tui"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

const (
	flagRoute = "route"
	flagLang  = "lang"
)

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagRoute, "/", "path to open, e.g. /portfolio")
	cmd.Flags().String(flagLang, "", "locale to start in (lt, en, ru)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	l := cfg.Lang
	if code, _ := cmd.Flags().GetString(flagLang); code != "" {
		if l, err = locale.Parse(code); err != nil {
			return err
		}
	}
	start, _ := cmd.Flags().GetString(flagRoute)

	logPath, err := paths.LogFile()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	ctx := xslog.WithLogger(cmd.Context(), xslog.NewLogger(logFile, cfg.LogLevel))
	ctx = xslog.WithAttrs(ctx, xslog.Version(), xslog.Session(uuid.NewString()))
	logger := xslog.FromContext(ctx)

	catalog, err := locale.Load()
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}

	model := tui.New(tui.Deps{
		Ctx:     ctx,
		Logger:  logger,
		Catalog: catalog,
		Art:     assets.New(cfg.AssetsDir).LoadArt(ctx),
		Field: starfield.New(starfield.Options{
			Count: cfg.Starfield.Count,
			DPR:   cfg.Starfield.DPR,
			Seed:  cfg.Starfield.Seed,
		}),
		Locale: l,
		Start:  start,
	})

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
