// Package edncfg loads CLI/REPL configuration: prompt string, history
// file location, and whether pretty-printed output uses color. It is
// ambient tooling; the core reader/eval packages take no configuration
// of their own.
package edncfg

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the resolved CLI/REPL configuration.
type Config struct {
	Prompt      string
	HistoryFile string
	Color       bool
}

func defaults() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Prompt:      "edn> ",
		HistoryFile: filepath.Join(home, ".edn_history"),
		Color:       true,
	}
}

// Load reads .ednrc (always parsed as YAML) from the
// current directory and the user's home directory, and the EDN_*
// environment variables, layered over Config's defaults.
func Load() (Config, error) {
	cfg := defaults()

	v := viper.New()
	v.SetConfigName(".ednrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("EDN")
	v.AutomaticEnv()

	v.SetDefault("prompt", cfg.Prompt)
	v.SetDefault("history_file", cfg.HistoryFile)
	v.SetDefault("color", cfg.Color)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, err
		}
	}

	cfg.Prompt = v.GetString("prompt")
	cfg.HistoryFile = v.GetString("history_file")
	cfg.Color = v.GetBool("color")
	return cfg, nil
}
