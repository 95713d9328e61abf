// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chronicle CLI: given a calendar
// date, report what the world read and listened to then.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the process-wide diagnostic logger; no-op unless --verbose.
var logger = zap.NewNop()

// secretDefault returns fallback if set, the .secrets/ value for key
// otherwise, or "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the chronicle CLI.
var rootCmd = &cobra.Command{
	Use:   "chronicle",
	Short: "News and music from any date since 1803",
	Long: `chronicle aggregates historical newspaper archives, a modern news archive,
year-end music charts, and a video-search tool into a daily digest for any
calendar date. Era routing decides which upstreams can serve a date; empty
results fall back across sources and substitute dates.

Each surface is a subcommand: daily, news, music, and article.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chronicle.yaml or ~/.config/chronicle/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable diagnostic logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chronicle")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chronicle"))
		}
	}

	viper.SetEnvPrefix("CHRONICLE")
	viper.AutomaticEnv()

	viper.SetDefault("http_timeout", 30*time.Second)
	viper.SetDefault("user_agent", "chronicle/0.1")
	viper.SetDefault("gemini_model", "")
	viper.SetDefault("yt_dlp_path", "yt-dlp")
	viper.SetDefault("python_path", "python3")
	viper.SetDefault("chart_script", "scripts/get_billboard_chart.py")
	viper.SetDefault("max_articles", 10)
	viper.SetDefault("max_songs", 5)
	viper.SetDefault("similarity_threshold", 0.7)
	viper.SetDefault("resolve_delay", time.Second)
	viper.SetDefault("max_candidates", 3)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
