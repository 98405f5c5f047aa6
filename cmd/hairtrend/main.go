package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/izhairtrend/hairtrend/internal/version"
)

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hairtrend",
		Short:   "IZ HAIR TREND in your terminal",
		Long:    "Opens the full-screen site: intro, starfield and the five views.",
		Version: version.Get(),
		Args:    cobra.NoArgs,
		RunE:    runTUI,
	}
	addTUIFlags(rootCmd)

	rootCmd.AddCommand(serveCmd())
	addDevCommands(rootCmd)
	return rootCmd
}
