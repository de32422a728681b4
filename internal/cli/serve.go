// internal/cli/serve.go
package gapdash

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gapdash/internal/logging"
	"github.com/mwiater/gapdash/internal/server"
)

// serveCmd runs the HTTP dashboard until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard, JSON API and CSV files over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		view, err := startView(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(background(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Fetcher: newFetcher(),
			Sources: sourcesFor(cfg),
			DataDir: cfg.DataDir(),
			View:    view,
		})
		// A failed load is served as the error page with a retry button.
		if err := srv.Reload(ctx); err != nil {
			logging.LogWarn("Initial load failed: %v", err)
		}
		return srv.ListenAndServe(ctx, cfg.ServeAddr())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address")
	serveCmd.Flags().String("data-dir", "", "directory served under /data/")
	_ = viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("serve.dataDir", serveCmd.Flags().Lookup("data-dir"))
	rootCmd.AddCommand(serveCmd)
}

// background is used when a command runs without a context.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
