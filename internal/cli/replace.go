package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecortina/srcmeta/internal/filerange"
)

var (
	replaceStart   int
	replaceEnd     int
	replaceContent string
)

var replaceCmd = &cobra.Command{
	Use:   "replace <file>",
	Short: "Replace a 1-indexed inclusive line range of a file",
	Long: `Replace splices new content over a line range of the file. The content
comes from --content, or from stdin when the flag is unset. A start line
past the end of the file appends.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := replaceContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			content = string(data)
		}
		if err := filerange.Replace(args[0], content, replaceStart, replaceEnd); err != nil {
			return err
		}
		if verbose {
			logger.Printf("replaced lines %d-%d of %s", replaceStart, replaceEnd, args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().IntVar(&replaceStart, "start", 0, "first line to replace (default is the start of the file)")
	replaceCmd.Flags().IntVar(&replaceEnd, "end", 0, "last line to replace (default is the end of the file)")
	replaceCmd.Flags().StringVar(&replaceContent, "content", "", "replacement text (default is stdin)")
}
