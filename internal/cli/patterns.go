// internal/cli/patterns.go
package gapdash

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/gapdash/internal/distribution"
	"github.com/mwiater/gapdash/internal/util"
)

var (
	patternsCancer string
	patternsPNG    string
)

// patternsCmd prints the pattern distribution and optionally writes it as a
// PNG pie chart.
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Print the pattern distribution",
	Long:  `The 'patterns' command buckets the task records of the selected view by their three-character pattern. Use --cancer to restrict it to one cancer type and --png to also write a pie chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadState(background(cmd), getConfig())
		if err != nil {
			return err
		}
		opts := st.PatternOptions()
		if !contains(opts, patternsCancer) {
			return fmt.Errorf("unknown cancer type %q (choose from: %s)", patternsCancer, strings.Join(opts, ", "))
		}
		st = st.FilterPatterns(patternsCancer)

		out := cmd.OutOrStdout()
		printWarnings(out, st)
		d := st.Distribution()
		printDistribution(out, d)

		if patternsPNG == "" {
			return nil
		}
		var buf bytes.Buffer
		err = distribution.Render(&buf, d, distribution.ChartOptions{Format: distribution.FormatPNG})
		if errors.Is(err, distribution.ErrNoData) {
			color.New(color.FgYellow).Fprintf(out, "⚠ %v, chart not written\n", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		if err := util.WriteFile(patternsPNG, buf.Bytes()); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Fprintf(out, "Chart written to %s\n", patternsPNG)
		return nil
	},
}

func init() {
	patternsCmd.Flags().StringVar(&patternsCancer, "cancer", distribution.All, "cancer type to show, or all")
	patternsCmd.Flags().StringVar(&patternsPNG, "png", "", "write a pie chart PNG to this path")
	rootCmd.AddCommand(patternsCmd)
}

func printDistribution(w io.Writer, d distribution.Distribution) {
	filter := d.Filter
	if filter == distribution.All {
		filter = "All Cancer Types"
	}
	fmt.Fprintf(w, "Pattern Distribution by Cancer Type\n")
	fmt.Fprintf(w, "Cancer Type: %s\n", filter)
	fmt.Fprintf(w, "Total Tasks: %d\n", d.Total)
	if other := d.Total - d.Counted(); other > 0 {
		fmt.Fprintf(w, "Unrecognized Patterns: %d\n", other)
	}
	fmt.Fprintln(w)
	if d.Total == 0 {
		fmt.Fprintln(w, "No data available for selected cancer type")
		return
	}
	for i := range d.Labels {
		fmt.Fprintf(w, "  %-36s %s\n", d.LegendLabel(i), util.Bar(d.Percentage(i), 30))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
