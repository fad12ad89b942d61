package player

import (
	"os"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/handler"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	amount    int
)

// Execute runs the client CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaultServer := os.Getenv("QUIZ_SERVER_URL")
	if defaultServer == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			defaultServer = cfg.Client.ServerURL
		} else {
			defaultServer = "http://localhost:8080"
		}
	}

	cmd := &cobra.Command{
		Use:   "quiz-player",
		Short: "Terminal client for the trivia quiz API",
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "base URL of the quiz API")
	cmd.PersistentFlags().IntVar(&amount, "amount", handler.DefaultQuizAmount, "questions to request per quiz")
	cmd.AddCommand(newPlayCmd())
	return cmd
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := NewUI(NewAPIClient(serverURL), cmd.InOrStdin(), cmd.OutOrStdout(), amount)
			return ui.Run(cmd.Context())
		},
	}
}
