// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Fetch and clean the OCR text of a historical article",
	Long: `Article retrieves one scanned newspaper page from the historical-US
archive by its LCCN path (e.g. lccn/sn91068402/1895-02-28/ed-1/seq-2),
pulls the raw OCR text, and cleans it through the LLM with
period-appropriate prompting. Without an LLM key the raw text is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")

		record, err := newOCRPipeline(loadConfig()).Enrich(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("article not found: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(os.Stdout, record)
		}
		if showRaw, _ := cmd.Flags().GetBool("raw"); showRaw {
			fmt.Fprintln(os.Stdout, record.RawText)
			return nil
		}

		fmt.Fprintf(os.Stdout, "%s - %s (page %d)\n\n", record.NewspaperName, record.DateIssued, record.Sequence)
		fmt.Fprintln(os.Stdout, record.CleanedText)
		return nil
	},
}

func init() {
	articleCmd.Flags().String("id", "", "article id (LCCN path)")
	articleCmd.Flags().Bool("json", false, "output full record as JSON")
	articleCmd.Flags().Bool("raw", false, "print raw OCR text instead of cleaned")
	articleCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(articleCmd)
}
