package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/pitch"
	"github.com/pitchcraft/pitchsmoke/pkg/poll"
	"github.com/pitchcraft/pitchsmoke/pkg/promptlayer"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run the pitch workflow once with canned sample data",
	Long: `Run the configured workflow agent once with the canned EL2 project
manager scenario (two STAR examples, fixed word counts), poll for the
result, and print it in full.

Requires PROMPTLAYER_API_KEY in the environment or a .env file.`,
	RunE: runAgent,
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg, apiKey, err := requireAPIKey()
	if err != nil {
		return err
	}

	input, err := pitch.AgentInput()
	if err != nil {
		return fmt.Errorf("building input variables: %w", err)
	}

	client := promptlayer.New(cfg.BaseURL, apiKey)

	fmt.Printf("%s Starting workflow run (%s)\n", style.C(style.Blue, "→"), style.C(style.Cyan, cfg.Agent))

	run, err := client.RunWorkflow(cmd.Context(), cfg.Agent, promptlayer.RunRequest{
		InputVariables:   input,
		ReturnAllOutputs: false,
	})
	if err != nil {
		fmt.Printf("%s %v\n", style.C(style.Red, "✗"), err)
		return nil
	}

	fmt.Printf("%s Execution started with ID %s\n",
		style.C(style.Green, "✓"), style.C(style.Cyan, run.WorkflowVersionExecutionID))
	rememberExecution(run.WorkflowVersionExecutionID, cfg.Agent)

	result, err := waitForResult(cmd.Context(), cfg, client, run.WorkflowVersionExecutionID)
	if err != nil {
		if errors.Is(err, poll.ErrExhausted) {
			fmt.Printf("%s Timed out waiting for workflow result (rerun with: pitchsmoke poll)\n", style.C(style.Red, "✗"))
			return nil
		}
		fmt.Printf("%s %v\n", style.C(style.Red, "✗"), err)
		return nil
	}

	fmt.Printf("\n%s\n\n", style.B("===== AGENT RESULT ====="))
	fmt.Println(result)
	fmt.Printf("\n%s\n", style.B("========================"))
	return nil
}
