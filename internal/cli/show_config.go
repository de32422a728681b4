// internal/cli/show_config.go
package gapdash

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/gapdash/internal/appconfig"
)

var showConfigRaw bool

// showConfigCmd implements 'show config', which prints the merged
// configuration after flags have been applied over the file.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		out := cmd.OutOrStdout()
		if showConfigRaw {
			pp.ColoringEnabled = false
			_, err := pp.Fprintln(out, cfg)
			return err
		}
		appconfig.ShowConfig(out, cfg.ConfigPath, cfg)
		return nil
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigRaw, "raw", false, "dump the config struct")
	showCmd.AddCommand(showConfigCmd)
}
