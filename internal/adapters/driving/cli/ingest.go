package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document into the index",
	Long: `Extracts text from a PDF or plain-text file, chunks it into
overlapping word windows, embeds the chunks and stores them in the
local vector index. Scanned PDFs fall back to OCR when the native
text layer is empty.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}
	if ingestService == nil {
		return fmt.Errorf("ingest: %w", errNotConfigured)
	}

	doc, err := ingestService.Ingest(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if ingestJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Ingested %s\n", doc.Filename)
	cmd.Printf("  ID:     %s\n", doc.ID)
	cmd.Printf("  Chunks: %d\n", doc.ChunkCount)
	return nil
}
