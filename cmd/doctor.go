package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/config"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check credentials and endpoint reachability",
	Long:  `Verify the API key and endpoints the smoke commands depend on.`,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	fmt.Printf("%s Checking pitchsmoke setup\n\n", style.C(style.Blue, "→"))

	// Check 1: API key present
	if config.APIKey() == "" {
		fmt.Printf("%s %s not set\n", style.C(style.Red, "✗"), config.EnvAPIKey)
		fmt.Printf("  Export it or add it to a .env file\n")
	} else {
		fmt.Printf("%s %s set\n", style.C(style.Green, "✓"), config.EnvAPIKey)
	}

	// Check 2: config file
	if _, err := os.Stat(config.Path()); err == nil {
		fmt.Printf("%s Config file %s found\n", style.C(style.Green, "✓"), config.Path())
	} else {
		fmt.Printf("%s No config file %s (defaults apply)\n", style.C(style.Yellow, "!"), config.Path())
	}

	client := &http.Client{Timeout: 5 * time.Second}

	// Check 3: workflow API reachable
	checkEndpoint(client, "workflow API", cfg.BaseURL)

	// Check 4: local server reachable
	checkEndpoint(client, "local server", cfg.LocalBase)

	fmt.Println()
	return nil
}

// checkEndpoint reports whether a base URL answers HTTP at all. Any
// status code counts as reachable; only transport errors fail.
func checkEndpoint(client *http.Client, name, base string) {
	resp, err := client.Get(base)
	if err != nil {
		fmt.Printf("%s %s unreachable (%s)\n", style.C(style.Red, "✗"), name, base)
		return
	}
	resp.Body.Close()
	fmt.Printf("%s %s reachable (%s)\n", style.C(style.Green, "✓"), name, base)
}
