package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecortina/srcmeta/internal/gemini"
)

var (
	askModel  string
	askSystem string
	askJSON   bool
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>...",
	Short: "Send a prompt to Gemini and print the answer",
	Long: `Ask sends a prompt to the Gemini generateContent endpoint and prints
the model's answer. The API key comes from the GEMINI_API_KEY environment
variable or a .env file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		model := askModel
		if model == "" {
			model = cfg.Gemini.Model
		}
		client, err := gemini.NewClient(gemini.Config{
			Model:   model,
			Timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
			Logger:  logger,
		})
		if err != nil {
			return err
		}

		answer, err := client.Generate(cmd.Context(), gemini.Request{
			Prompt:            strings.Join(args, " "),
			SystemInstruction: askSystem,
			ForceJSON:         askJSON,
		})
		if err != nil {
			return err
		}
		// Some models prefix formula-style answers with "=".
		answer = strings.TrimSpace(strings.TrimPrefix(answer, "="))
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askModel, "model", "", "Gemini model to query (default from configuration)")
	askCmd.Flags().StringVar(&askSystem, "system", "", "system instruction for the request")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "request a JSON-formatted answer")
}
