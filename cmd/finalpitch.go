package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/config"
	"github.com/pitchcraft/pitchsmoke/pkg/pitch"
	"github.com/pitchcraft/pitchsmoke/pkg/report"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var finalPitchBase string

var finalPitchCmd = &cobra.Command{
	Use:   "finalpitch",
	Short: "Smoke-test a local /api/finalPitch endpoint",
	Long: `Post the canned APS6 Data Analyst payload (two structured STAR
examples, 650 word limit) to {base}/api/finalPitch and print the
response. The call is synchronous; there is no polling.

Examples:
  pitchsmoke finalpitch
  pitchsmoke finalpitch --base https://abc123.ngrok-free.app`,
	RunE: runFinalPitch,
}

func init() {
	finalPitchCmd.Flags().StringVar(&finalPitchBase, "base", "", "Base URL of the local server (default from config)")
	rootCmd.AddCommand(finalPitchCmd)
}

func runFinalPitch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	base := finalPitchBase
	if base == "" {
		base = cfg.LocalBase
	}
	endpoint := strings.TrimRight(base, "/") + "/api/finalPitch"

	body, err := json.Marshal(pitch.SampleFinalPitch())
	if err != nil {
		return fmt.Errorf("building payload: %w", err)
	}

	fmt.Printf("POST %s\n", style.C(style.Cyan, endpoint))

	// Pitch generation behind this endpoint can take a while
	client := &http.Client{Timeout: 90 * time.Second}
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("%s %v\n", style.C(style.Red, "✗"), err)
		return nil
	}
	defer resp.Body.Close()

	fmt.Printf("Status: %s\n\n", resp.Status)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("%s reading response body: %v\n", style.C(style.Red, "✗"), err)
		return nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		fmt.Printf("Non-JSON response:\n%s\n", string(data))
		return nil
	}
	fmt.Println(report.JSON(decoded))
	return nil
}
