package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecortina/srcmeta/internal/store"
)

var (
	functionsKey string
	functionsOut string
)

var functionsCmd = &cobra.Command{
	Use:   "functions <file>",
	Short: "Extract per-function details keyed by file",
	Long: `Functions parses a Python file and prints a map from the file key to its
function records, each carrying line range, rendered parameters, and
return type. With --out the result merges into a JSON store instead of
printing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		key := functionsKey
		if key == "" {
			key = filepath.Base(args[0])
		}
		result, err := newAnalyzer(cfg).AnalyzeFunctions(string(source), key)
		if err != nil {
			return err
		}

		if functionsOut == "" {
			return printJSON(cmd.OutOrStdout(), result)
		}
		doc, err := store.DocumentFrom(result)
		if err != nil {
			return err
		}
		if err := mergeInto(functionsOut, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "merged %s into %s\n", key, functionsOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)

	functionsCmd.Flags().StringVar(&functionsKey, "key", "", "file key for the result (default is the file's base name)")
	functionsCmd.Flags().StringVar(&functionsOut, "out", "", "JSON store to merge the result into")
}
