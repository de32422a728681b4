// internal/cli/root.go
package gapdash

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gapdash/internal/appconfig"
	"github.com/mwiater/gapdash/internal/logging"
)

// fileOnlyLogging marks commands whose stdout is owned by something other
// than the logger.
const fileOnlyLogging = "logging"

var (
	cfgFile        string
	configFileUsed string
	currentConfig  *appconfig.Config
)

// loadConfig is swapped out in tests.
var loadConfig = appconfig.Load

var rootCmd = &cobra.Command{
	Use:           "gapdash",
	Short:         "gapdash — performance gap analysis for cancer subtype prediction tasks",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(cmd.Flags().Changed("config")); err != nil {
			return err
		}

		// 2) Materialize the merged configuration (flags > config > defaults).
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = configFileUsed
		currentConfig = &cfg

		// 3) Logging follows the merged config.
		initLog := logging.Init
		if cmd.Annotations[fileOnlyLogging] == "file" {
			initLog = logging.InitFileOnly
		}
		if err := initLog(cfg.LogFilePath(), cfg.Debug); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		logging.LogDebug("Config: %s", describeConfigFile(cfg.ConfigPath))
		return nil
	},
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SetVersionInfo stamps the build metadata reported by --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "log file path")
	rootCmd.PersistentFlags().String("bagging", "", "bagging dataset (file path or http(s) URL)")
	rootCmd.PersistentFlags().String("noBagging", "", "no-bagging dataset (file path or http(s) URL)")
	rootCmd.PersistentFlags().String("view", "", "initial view: bagging or no-bagging")

	// Flags override config.
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
	_ = viper.BindPFlag("datasets.bagging", rootCmd.PersistentFlags().Lookup("bagging"))
	_ = viper.BindPFlag("datasets.noBagging", rootCmd.PersistentFlags().Lookup("noBagging"))
	_ = viper.BindPFlag("defaultView", rootCmd.PersistentFlags().Lookup("view"))
}

// ensureConfigLoaded validates and reads the config file with
// appconfig.Load, then seeds viper's defaults from it so bound flags still
// win. A missing file is fine unless it was named explicitly.
func ensureConfigLoaded(explicit bool) error {
	path := ""
	if explicit {
		path = cfgFile
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	configFileUsed = cfg.ConfigPath

	viper.SetDefault("datasets.bagging", cfg.Datasets.Bagging)
	viper.SetDefault("datasets.noBagging", cfg.Datasets.NoBagging)
	viper.SetDefault("defaultView", cfg.DefaultView)
	viper.SetDefault("debug", cfg.Debug)
	viper.SetDefault("logFile", cfg.LogFile)
	viper.SetDefault("serve.addr", cfg.Serve.Addr)
	viper.SetDefault("serve.dataDir", cfg.Serve.DataDir)
	viper.SetDefault("reportPath", cfg.ReportPath)
	return nil
}

// getConfig returns the merged configuration, or the defaults before the
// root command has run.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Defaults()
	}
	return *currentConfig
}

func describeConfigFile(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
