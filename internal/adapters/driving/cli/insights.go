package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

var insightsJSON bool

var insightsCmd = &cobra.Command{
	Use:   "insights [document-id]",
	Short: "Show the insight record for a document",
	Long: `Prints the structured insights generated at ingestion time: a short
summary, key points and named entities.`,
	Args: cobra.ExactArgs(1),
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}
	if insightService == nil {
		return fmt.Errorf("insights: %w", errNotConfigured)
	}

	insight, err := insightService.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no insights for document %s", args[0])
		}
		return fmt.Errorf("insights failed: %w", err)
	}

	if insightsJSON {
		data, err := json.MarshalIndent(insight, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal insight: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Summary:\n  %s\n", insight.Summary)

	if len(insight.KeyPoints) > 0 {
		cmd.Println("\nKey points:")
		for _, p := range insight.KeyPoints {
			cmd.Printf("  - %s\n", p)
		}
	}

	if len(insight.Entities) > 0 {
		cmd.Println("\nEntities:")
		for _, e := range insight.Entities {
			cmd.Printf("  - %s\n", e)
		}
	}

	return nil
}
