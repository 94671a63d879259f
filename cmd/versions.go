package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/config"
	"github.com/pitchcraft/pitchsmoke/pkg/pitch"
	"github.com/pitchcraft/pitchsmoke/pkg/poll"
	"github.com/pitchcraft/pitchsmoke/pkg/promptlayer"
	"github.com/pitchcraft/pitchsmoke/pkg/report"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Sweep version-label selection across STAR example counts",
	Long: `Run the workflow once per STAR example count (2, 3 and 4), pinning
each run to the version label mapped to that count and deriving the
word-count split from the example count. Prints a result preview per
run so label selection can be verified against the service logs.`,
	RunE: runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg, apiKey, err := requireAPIKey()
	if err != nil {
		return err
	}

	client := promptlayer.New(cfg.BaseURL, apiKey)

	fmt.Println("Starting version-label sweep...")
	for _, n := range []int{2, 3, 4} {
		runVersionCase(cmd.Context(), cfg, client, n)
	}
	fmt.Println("\nAll version cases completed.")
	return nil
}

func runVersionCase(ctx context.Context, cfg *config.Config, client *promptlayer.Client, numExamples int) {
	fmt.Printf("\n%s Testing with %d STAR examples\n", style.C(style.Blue, "→"), numExamples)

	label, ok := pitch.VersionLabel(numExamples)
	if !ok {
		fmt.Printf("%s Unexpected example count %d, defaulting to %s\n",
			style.C(style.Yellow, "!"), numExamples, label)
	}
	fmt.Printf("  Expected version: %s\n", style.C(style.Cyan, label))

	input, err := pitch.SampleInput(numExamples)
	if err != nil {
		fmt.Printf("%s building input variables: %v\n", style.C(style.Red, "✗"), err)
		return
	}

	run, err := client.RunWorkflow(ctx, cfg.Agent, promptlayer.RunRequest{
		WorkflowLabelName: label,
		InputVariables:    input,
		ReturnAllOutputs:  false,
	})
	if err != nil {
		fmt.Printf("%s %v\n", style.C(style.Red, "✗"), err)
		return
	}

	fmt.Printf("%s Execution started with ID %s\n",
		style.C(style.Green, "✓"), style.C(style.Cyan, run.WorkflowVersionExecutionID))
	rememberExecution(run.WorkflowVersionExecutionID, cfg.Agent)

	result, err := waitForResult(ctx, cfg, client, run.WorkflowVersionExecutionID)
	if err != nil {
		if errors.Is(err, poll.ErrExhausted) {
			fmt.Printf("%s Timed out waiting for results\n", style.C(style.Red, "✗"))
		} else {
			fmt.Printf("%s %v\n", style.C(style.Red, "✗"), err)
		}
		return
	}

	fmt.Printf("%s Execution completed\n", style.C(style.Green, "✓"))
	fmt.Printf("  Result preview: %s\n", report.Preview(result, 100))
}
