package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsJSON bool

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage ingested documents",
	Long:  `List, inspect or delete documents from the local catalogue.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [document-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [document-id]",
	Short: "Delete a document and its insights",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsListCmd.Flags().BoolVar(&documentsJSON, "json", false, "output as JSON")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}
	if documentService == nil {
		return fmt.Errorf("documents: %w", errNotConfigured)
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if documentsJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents ingested yet.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    File:   %s\n", docs[i].Filename)
		cmd.Printf("    Chunks: %d\n", docs[i].ChunkCount)
		cmd.Printf("    Added:  %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04"))
		cmd.Println()
	}
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}
	if documentService == nil {
		return fmt.Errorf("documents: %w", errNotConfigured)
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("ID:      %s\n", doc.ID)
	cmd.Printf("File:    %s\n", doc.Filename)
	cmd.Printf("Chunks:  %d\n", doc.ChunkCount)
	cmd.Printf("Added:   %s\n", doc.CreatedAt.Format("2006-01-02 15:04"))
	cmd.Printf("Length:  %d characters\n", len(doc.Content))
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}
	if documentService == nil {
		return fmt.Errorf("documents: %w", errNotConfigured)
	}

	if err := documentService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
