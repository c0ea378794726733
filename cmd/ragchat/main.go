package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"ragchat/cmd/ragchat/config"
	"ragchat/internal/api"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose  bool
	endpoint string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "ragchat - terminal chat for a RAG chatbot backend",
	Long: `ragchat is a terminal client for a retrieval-augmented chatbot API.

It renders a scrollable transcript and an input box; each submitted
question is posted to the backend's /chat endpoint and the answer is
appended to the conversation.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env for RAGCHAT_ENDPOINT
		_ = godotenv.Load()

		// The interactive UI owns the terminal; keep logging silent there.
		if cmd.Use == "ragchat" && cmd.CalledAs() == "ragchat" {
			logger = zap.NewNop()
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch interactive chat
		return runInteractiveChat()
	},
}

// askCmd sends a single question without the TUI
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Long: `Sends one question to the backend's /chat endpoint and prints the
answer to stdout.

Example:
  ragchat ask "What is the capital of France?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// healthCmd probes the backend liveness endpoint
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the chatbot backend is reachable",
	RunE:  runHealth,
}

func newClient() *api.Client {
	settings := config.Resolve(endpoint)
	return api.New(settings.Endpoint, api.WithLogger(logger))
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	client := newClient()

	logger.Debug("sending question", zap.String("endpoint", client.BaseURL))

	answer, err := client.Ask(context.Background(), question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Println(answer)
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := newClient()

	status, err := client.Health(context.Background())
	if err != nil {
		return fmt.Errorf("backend unreachable at %s: %w", client.BaseURL, err)
	}

	fmt.Printf("%s: %s\n", status.Status, status.Message)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "",
		fmt.Sprintf("backend base URL (default $%s or %s)", config.EndpointEnvVar, api.DefaultBaseURL))

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
