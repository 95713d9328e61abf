// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronicle/internal/daily"
	"github.com/pdiddy/chronicle/internal/era"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Build a full digest (news + music) for a date",
	Long: `Daily assembles the complete digest for one date: articles from the
archives that cover it and popular songs resolved to videos. Without
--date a uniform random date across the archive span is drawn. When a
date yields no articles, substitute dates are tried: mid-June of the same
year, then a resample within the same era.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSongs, _ := cmd.Flags().GetInt("max-songs")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		cfg := loadConfig()
		svc := &daily.Service{
			News:  newNewsFetcher(cfg),
			Music: newMusicFetcher(cfg, maxSongs, threshold),
			Log:   logger,
		}

		var digest daily.Digest
		if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
			d, err := era.ParseDate(dateStr)
			if err != nil {
				return err
			}
			digest = svc.DigestForDate(cmd.Context(), d)
		} else {
			digest = svc.RandomDigest(cmd.Context())
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(os.Stdout, digest)
		}
		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			return writeYAML(os.Stdout, digest)
		}
		formatArticles(os.Stdout, digest.Articles, digest.Source)
		formatMusic(os.Stdout, digest.Music)
		return nil
	},
}

func init() {
	dailyCmd.Flags().String("date", "", "date to fetch (YYYY-MM-DD); random if omitted")
	dailyCmd.Flags().Int("max-songs", 5, "number of songs to fetch")
	dailyCmd.Flags().Float64("threshold", 0.7, "similarity floor for video matching")
	dailyCmd.Flags().Bool("json", false, "output as JSON")
	dailyCmd.Flags().Bool("yaml", false, "output as YAML")

	rootCmd.AddCommand(dailyCmd)
}
