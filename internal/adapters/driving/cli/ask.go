package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var askTopK int

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested documents",
	Long: `Embeds the question, retrieves the nearest indexed chunks and asks
the configured completion model to answer using only that context.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of context chunks to retrieve (default 5)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}
	if answerService == nil {
		return fmt.Errorf("ask: %w", errNotConfigured)
	}

	answer, err := answerService.Answer(context.Background(), args[0], askTopK)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer)
	return nil
}
