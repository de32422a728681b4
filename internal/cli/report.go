// internal/cli/report.go
package gapdash

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gapdash/internal/report"
	"github.com/mwiater/gapdash/internal/util"
)

// reportCmd writes the offline HTML dashboard.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a self-contained HTML report",
	Long:  `The 'report' command loads both datasets and writes a single HTML file with both views, every sort header and one pie chart per cancer type. The page needs no server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		st, err := loadState(background(cmd), cfg)
		if err != nil {
			return err
		}
		html, err := report.Generate(st.Data(), st.View(), report.Options{})
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		path := cfg.Report()
		if err := util.WriteFile(path, []byte(html)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		printWarnings(cmd.OutOrStdout(), st)
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "report file path")
	_ = viper.BindPFlag("reportPath", reportCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(reportCmd)
}
