package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docintel-labs/docintel/internal/adapters/driven/ai"
	configfile "github.com/docintel-labs/docintel/internal/adapters/driven/config/file"
	"github.com/docintel-labs/docintel/internal/adapters/driven/storage/sqlite"
	"github.com/docintel-labs/docintel/internal/extraction"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local setup",
	Long: `Check external extraction tools, provider configuration and
storage, and report what needs fixing.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cmd.Println("DocIntel Setup Check")
	cmd.Println("====================")
	cmd.Println()

	healthy := true

	// Extraction tools
	cmd.Println("[Extraction]")
	cmd.Println("  Native text layer: ok (built in)")
	if err := extraction.CheckAvailable(); err != nil {
		cmd.Printf("  Layout (pdftotext): missing (%v)\n", err)
		healthy = false
	} else {
		cmd.Println("  Layout (pdftotext): ok")
	}
	if err := extraction.OCRAvailable(); err != nil {
		cmd.Printf("  OCR (pdftoppm + tesseract): missing (%v)\n", err)
		healthy = false
	} else {
		cmd.Println("  OCR (pdftoppm + tesseract): ok")
	}
	cmd.Println()

	// Configuration and providers
	cfg, err := openConfigStore()
	if err != nil {
		cmd.Printf("[Config]\n  Error: %v\n", err)
		return err
	}
	cmd.Println("[Config]")
	cmd.Printf("  File: %s\n", cfg.Path())
	cmd.Println()

	cmd.Println("[Embedding]")
	embedSettings := configfile.EmbeddingSettings(cfg)
	cmd.Printf("  Provider: %s\n", embedSettings.Provider)
	if embedSettings.Model != "" {
		cmd.Printf("  Model: %s\n", embedSettings.Model)
	}
	if embedSettings.Provider.RequiresAPIKey() {
		cmd.Printf("  API key: %s\n", maskAPIKey(embedSettings.APIKey))
	}
	if svc, err := ai.CreateAndValidateEmbeddingService(embedSettings); err != nil {
		cmd.Printf("  Status: unreachable (%v)\n", err)
		healthy = false
	} else if svc == nil {
		cmd.Println("  Status: not configured")
		healthy = false
	} else {
		svc.Close()
		cmd.Println("  Status: ok")
	}
	cmd.Println()

	cmd.Println("[Completion]")
	llmSettings := configfile.LLMSettings(cfg)
	cmd.Printf("  Provider: %s\n", llmSettings.Provider)
	if llmSettings.Model != "" {
		cmd.Printf("  Model: %s\n", llmSettings.Model)
	}
	if llmSettings.Provider.RequiresAPIKey() {
		cmd.Printf("  API key: %s\n", maskAPIKey(llmSettings.APIKey))
	}
	if svc, err := ai.CreateAndValidateLLMService(llmSettings); err != nil {
		cmd.Printf("  Status: unreachable (%v)\n", err)
		cmd.Println("  Insights will use the heuristic fallback.")
	} else if svc == nil {
		cmd.Println("  Status: not configured")
		cmd.Println("  Insights will use the heuristic fallback.")
	} else {
		svc.Close()
		cmd.Println("  Status: ok")
	}
	cmd.Println()

	// Storage
	cmd.Println("[Storage]")
	store, err := sqlite.NewStore("")
	if err != nil {
		cmd.Printf("  Status: error (%v)\n", err)
		healthy = false
	} else {
		count, countErr := store.VectorIndex().Count(cmd.Context())
		if countErr != nil {
			cmd.Printf("  Status: error (%v)\n", countErr)
			healthy = false
		} else {
			cmd.Printf("  Indexed chunks: %d\n", count)
			cmd.Println("  Status: ok")
		}
		_ = store.Close()
	}
	cmd.Println()

	if !healthy {
		cmd.Println("Some checks failed.")
		cmd.Println()
		cmd.Println(extraction.InstallInstructions())
		cmd.Println()
		cmd.Println("Provider settings: run 'docintel config' for the available keys.")
	} else {
		cmd.Println("Everything looks good.")
	}
	return nil
}

// maskAPIKey hides all but the last four characters of a key.
func maskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
