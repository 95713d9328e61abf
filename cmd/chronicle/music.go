// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var musicCmd = &cobra.Command{
	Use:   "music",
	Short: "Fetch popular songs for a date, resolved to videos",
	Long: `Music pulls the year-end chart for the date's year (1958 onwards), tops
up from the LLM suggester when the chart comes up short, and resolves each
song to a streamable video through fuzzy-matched video search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		maxSongs, _ := cmd.Flags().GetInt("max-songs")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		fetcher := newMusicFetcher(loadConfig(), maxSongs, threshold)
		result := fetcher.FetchForDate(cmd.Context(), dateStr)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(os.Stdout, result)
		}
		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			return writeYAML(os.Stdout, result)
		}
		formatMusic(os.Stdout, result)
		return nil
	},
}

func init() {
	musicCmd.Flags().String("date", "", "date to fetch (YYYY-MM-DD)")
	musicCmd.Flags().Int("max-songs", 5, "number of songs to fetch")
	musicCmd.Flags().Float64("threshold", 0.7, "similarity floor for video matching")
	musicCmd.Flags().Bool("json", false, "output as JSON")
	musicCmd.Flags().Bool("yaml", false, "output as YAML")
	musicCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(musicCmd)
}
