package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	logger  = log.New(os.Stderr, "", log.LstdFlags)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srcmeta",
	Short: "Extract structural metadata from source code",
	Long: `srcmeta parses Python source and extracts function and class metadata:
names, line ranges, parameter and return types. Results print as JSON or
merge into a JSON store on disk. It also ships line-range file helpers and
a small Gemini client.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .srcmeta/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initEnv loads a .env file, if present, so GEMINI_API_KEY can live there
// instead of the shell environment.
func initEnv() {
	_ = godotenv.Load()
}
