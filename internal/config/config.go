// Package config loads sfecalc settings from defaults, an optional
// sfecalc.yaml, and SFECALC_* environment variables, in increasing
// precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the run settings
type Config struct {
	// BaseDir is scanned for Comp* composition directories
	BaseDir string
	// CSVOut and ReportOut are where analyze writes its exports
	CSVOut    string
	ReportOut string
	Verbose   bool
}

// Load reads configuration. If file is non-empty it must exist and
// parse; otherwise a missing sfecalc.yaml is fine and defaults apply.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_dir", ".")
	v.SetDefault("csv_out", "sfe_results.csv")
	v.SetDefault("report_out", "sfe_summary_report.txt")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("SFECALC")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		v.SetConfigName("sfecalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	return &Config{
		BaseDir:   v.GetString("base_dir"),
		CSVOut:    v.GetString("csv_out"),
		ReportOut: v.GetString("report_out"),
		Verbose:   v.GetBool("verbose"),
	}, nil
}
