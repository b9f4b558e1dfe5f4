package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecortina/srcmeta/internal/store"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <store> <results>",
	Short: "Merge analysis results into a JSON store",
	Long: `Merge folds the records of a results file into the store, matching
records by name within each file key. Matching records are replaced in
place, new ones append, and unknown file keys copy over wholesale.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		var updates store.Document
		if err := json.Unmarshal(data, &updates); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[1], err)
		}
		if err := store.Merge(args[0], updates); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "merged %s into %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
