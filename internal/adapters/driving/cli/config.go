package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/docintel-labs/docintel/internal/adapters/driven/config/file"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Get and set configuration values stored in ~/.docintel/config.toml.

Keys use dot notation, e.g.:

  ai.embedding.provider   ollama | openai
  ai.embedding.model      embedding model name
  ai.llm.provider         ollama | openai | gemini
  ai.llm.model            completion model name
  ai.llm.base_url         endpoint override (e.g. the Groq API)
  chunking.window_size    words per chunk
  chunking.overlap        words shared between adjacent chunks

API keys are read from the environment (OPENAI_API_KEY, GROQ_API_KEY,
GEMINI_API_KEY), optionally via a .env file.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// openConfigStore returns the wired config store, or opens one
// directly so config works before providers are set up.
func openConfigStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	return configfile.NewConfigStore("")
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	val, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	key, raw := args[0], args[1]

	// Store integers and booleans typed so GetInt/GetBool work.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cmd.Println(store.Path())
	return nil
}
