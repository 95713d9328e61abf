// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronicle/internal/era"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Fetch news articles published on a date",
	Long: `News queries the archives that cover the given date: both historical
archives concurrently for years up to 1963, the modern archive for 1999
onwards, and a modern-first fallback chain for the gap years between.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		d, err := era.ParseDate(dateStr)
		if err != nil {
			return err
		}

		fetcher := newNewsFetcher(loadConfig())
		articles := fetcher.FetchForDate(cmd.Context(), d)
		info := era.SourceInfoFor(d.Year)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(os.Stdout, articles)
		}
		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			return writeYAML(os.Stdout, articles)
		}
		formatArticles(os.Stdout, articles, info)
		return nil
	},
}

func init() {
	newsCmd.Flags().String("date", "", "date to fetch (YYYY-MM-DD)")
	newsCmd.Flags().Bool("json", false, "output as JSON")
	newsCmd.Flags().Bool("yaml", false, "output as YAML")
	newsCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(newsCmd)
}
