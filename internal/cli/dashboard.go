// internal/cli/dashboard.go
package gapdash

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gapdash/internal/tui"
)

// dashboardCmd starts the interactive terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:         "dashboard",
	Short:       "Start the interactive terminal dashboard",
	Long:        `The 'dashboard' command opens the terminal UI with the task table, the cancer-grouped table and the pattern distribution. Logs go to the log file only.`,
	Annotations: map[string]string{fileOnlyLogging: "file"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		view, err := startView(cfg)
		if err != nil {
			return err
		}
		return tui.Start(background(cmd), tui.Options{
			Fetcher: newFetcher(),
			Sources: sourcesFor(cfg),
			View:    view,
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
