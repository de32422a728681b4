package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Bagging Dataset:    %s\n", cfg.BaggingSource())
	fmt.Fprintf(out, "  No-Bagging Dataset: %s\n", cfg.NoBaggingSource())
	fmt.Fprintf(out, "  Default View:       %s\n", cfg.View())
	fmt.Fprintf(out, "  Debug:              %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:           %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Serve Address:      %s\n", cfg.ServeAddr())
	fmt.Fprintf(out, "  Serve Data Dir:     %s\n", cfg.DataDir())
	fmt.Fprintf(out, "  Report Path:        %s\n", cfg.Report())
}
