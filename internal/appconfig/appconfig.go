// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultBaggingSource is the bagging dataset read when none is configured.
	DefaultBaggingSource = "data/bagging_analysis.csv"
	// DefaultNoBaggingSource is the no-bagging dataset read when none is configured.
	DefaultNoBaggingSource = "data/features_analysis.csv"
	defaultView            = "bagging"
	defaultLogFile         = "gapdash.log"
	defaultServeAddr       = ":8080"
	defaultDataDir         = "data"
	defaultReportPath      = "gapdash_report.html"
)

// Config represents the top-level application configuration.
type Config struct {
	Datasets    Datasets `json:"datasets" mapstructure:"datasets"`
	DefaultView string   `json:"defaultView,omitempty" mapstructure:"defaultView"`
	Debug       bool     `json:"debug" mapstructure:"debug"`
	LogFile     string   `json:"logFile,omitempty" mapstructure:"logFile"`
	Serve       Serve    `json:"serve" mapstructure:"serve"`
	ReportPath  string   `json:"reportPath,omitempty" mapstructure:"reportPath"`
	ConfigPath  string   `json:"-" mapstructure:"-"`
}

// Datasets names the two CSV sources. Each is a file path or an http(s) URL.
type Datasets struct {
	Bagging   string `json:"bagging,omitempty" mapstructure:"bagging"`
	NoBagging string `json:"noBagging,omitempty" mapstructure:"noBagging"`
}

// Serve configures the HTTP surface.
type Serve struct {
	Addr    string `json:"addr,omitempty" mapstructure:"addr"`
	DataDir string `json:"dataDir,omitempty" mapstructure:"dataDir"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Datasets: Datasets{
			Bagging:   DefaultBaggingSource,
			NoBagging: DefaultNoBaggingSource,
		},
		DefaultView: defaultView,
		LogFile:     defaultLogFile,
		Serve:       Serve{Addr: defaultServeAddr, DataDir: defaultDataDir},
		ReportPath:  defaultReportPath,
	}
}

// BaggingSource returns the bagging dataset source, applying a default if not set.
func (c Config) BaggingSource() string {
	return orDefault(c.Datasets.Bagging, DefaultBaggingSource)
}

// NoBaggingSource returns the no-bagging dataset source, applying a default if not set.
func (c Config) NoBaggingSource() string {
	return orDefault(c.Datasets.NoBagging, DefaultNoBaggingSource)
}

// View returns the initial dashboard view.
func (c Config) View() string {
	return orDefault(c.DefaultView, defaultView)
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	return orDefault(c.LogFile, defaultLogFile)
}

func (c Config) ServeAddr() string {
	return orDefault(c.Serve.Addr, defaultServeAddr)
}

func (c Config) DataDir() string {
	return orDefault(c.Serve.DataDir, defaultDataDir)
}

func (c Config) Report() string {
	return orDefault(c.ReportPath, defaultReportPath)
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

// Load validates and reads the configuration at path. A missing file at the
// default path yields Defaults; a missing explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Defaults(), nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := ValidateBytes(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	config := Defaults()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}
