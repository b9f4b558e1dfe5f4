package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecortina/srcmeta/internal/filerange"
)

var (
	readStart int
	readEnd   int
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Print a 1-indexed inclusive line range of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := filerange.Read(args[0], readStart, readEnd)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().IntVar(&readStart, "start", 0, "first line to read (default is the start of the file)")
	readCmd.Flags().IntVar(&readEnd, "end", 0, "last line to read (default is the end of the file)")
}
