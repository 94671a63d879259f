package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/log"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var (
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pitchsmoke",
	Short: "Smoke tests for the pitch generation workflow API",
	Long: `pitchsmoke exercises the hosted workflow API and the local pitch
endpoint with canned STAR example data.

Run a single agent execution, sweep version-label selection across STAR
example counts, or post to a locally running /api/finalPitch. Outcomes
are printed for manual inspection; smoke failures are informational and
do not change the exit code.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetVerbose(verbose)
		log.SetQuiet(quiet)
	},
}

func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Setup Typer-style help formatting
	style.SetupHelp(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
