package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/config"
	"github.com/pitchcraft/pitchsmoke/pkg/poll"
	"github.com/pitchcraft/pitchsmoke/pkg/promptlayer"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var pollCmd = &cobra.Command{
	Use:   "poll [execution-id]",
	Short: "Resume polling a workflow execution",
	Long: `Poll the results endpoint for an existing execution without starting
a new run. With no argument, the execution ID cached by the last
agent/versions run is used. Useful when a run outlived the previous
polling budget.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPoll,
}

func init() {
	rootCmd.AddCommand(pollCmd)
}

func runPoll(cmd *cobra.Command, args []string) error {
	cfg, apiKey, err := requireAPIKey()
	if err != nil {
		return err
	}

	var executionID string
	if len(args) == 1 {
		executionID = args[0]
	} else {
		cached, err := config.LoadExecution()
		if err != nil {
			return fmt.Errorf("no execution ID given and none cached: %w", err)
		}
		executionID = cached.ExecutionID
		fmt.Printf("%s Resuming cached execution %s (%s)\n",
			style.C(style.Blue, "→"), style.C(style.Cyan, executionID), cached.Agent)
	}

	client := promptlayer.New(cfg.BaseURL, apiKey)

	result, err := waitForResult(cmd.Context(), cfg, client, executionID)
	if err != nil {
		if errors.Is(err, poll.ErrExhausted) {
			fmt.Printf("%s Timed out waiting for workflow result\n", style.C(style.Red, "✗"))
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
