// Package cli implements the command-line interface using cobra.
// Commands are thin adapters over the driving port services.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docintel-labs/docintel/internal/adapters/driven/ai"
	configfile "github.com/docintel-labs/docintel/internal/adapters/driven/config/file"
	"github.com/docintel-labs/docintel/internal/adapters/driven/storage/sqlite"
	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/core/ports/driving"
	"github.com/docintel-labs/docintel/internal/core/services"
	"github.com/docintel-labs/docintel/internal/extraction"
	"github.com/docintel-labs/docintel/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services wired by initServices, overridable in tests.
var (
	ingestService   driving.IngestService
	answerService   driving.AnswerService
	insightService  driving.InsightService
	documentService driving.DocumentService
	configStore     driven.ConfigStore

	servicesReady bool
	closers       []func()
)

var rootCmd = &cobra.Command{
	Use:   "docintel",
	Short: "Local document intelligence",
	Long: `DocIntel ingests PDF and text documents into a local vector index
and answers questions grounded on their content.

Ingestion extracts text (with layout and OCR fallbacks for PDFs),
chunks it into overlapping word windows, embeds the chunks and stores
them durably. Questions are answered by retrieving the nearest chunks
and conditioning a completion model on them.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// Execute runs the CLI, releasing wired resources afterwards.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// initServices wires adapters and services from configuration.
// Commands call it lazily so that version/help work without any
// configured providers. Tests bypass it by setting the service vars.
func initServices() error {
	if servicesReady {
		return nil
	}

	// API keys may live in a local .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	closers = append(closers, func() { _ = store.Close() })

	embeddingSvc, err := ai.CreateAndValidateEmbeddingService(configfile.EmbeddingSettings(cfg))
	if err != nil {
		return err
	}
	if embeddingSvc == nil {
		return fmt.Errorf("%w: no embedding provider configured", domain.ErrEmbeddingUnavailable)
	}
	closers = append(closers, func() { _ = embeddingSvc.Close() })

	// The completion model is optional: without it, insights fall back
	// to heuristics and 'ask' reports the provider as unavailable.
	llmSvc, err := ai.CreateAndValidateLLMService(configfile.LLMSettings(cfg))
	if err != nil {
		logger.Warn("Completion provider unavailable: %v", err)
		llmSvc = nil
	}
	if llmSvc != nil {
		closers = append(closers, func() { _ = llmSvc.Close() })
	}

	vectorIndex := store.VectorIndex()
	docStore := store.DocumentStore()
	insightStore := store.InsightStore()

	insightSvc := services.NewInsightService(insightStore, llmSvc, prompts)

	insightService = insightSvc
	ingestService = services.NewIngestService(
		extraction.NewPDFChain(),
		docStore,
		vectorIndex,
		embeddingSvc,
		insightSvc,
		configfile.ChunkingSettings(cfg),
	)
	answerService = services.NewAnswerService(embeddingSvc, vectorIndex, llmSvc, prompts)
	documentService = services.NewDocumentService(docStore, insightStore)

	servicesReady = true
	return nil
}

// closeServices releases everything initServices opened.
func closeServices() {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
	closers = nil
}

// errNotConfigured standardises the message for missing services.
var errNotConfigured = errors.New("service not configured")

// requireServices initialises services unless a test wired its own.
func requireServices() error {
	if servicesReady {
		return nil
	}
	if err := initServices(); err != nil {
		fmt.Fprintln(os.Stderr, "Hint: run 'docintel doctor' to check your setup")
		return err
	}
	return nil
}
