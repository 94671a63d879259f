package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchcraft/pitchsmoke/pkg/config"
	"github.com/pitchcraft/pitchsmoke/pkg/log"
	"github.com/pitchcraft/pitchsmoke/pkg/poll"
	"github.com/pitchcraft/pitchsmoke/pkg/promptlayer"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

// requireAPIKey loads config and the workflow API key, erroring out
// when the key is missing. Used by every command that talks to the
// hosted API.
func requireAPIKey() (*config.Config, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("config error: %w", err)
	}
	apiKey := config.APIKey()
	if apiKey == "" {
		return nil, "", fmt.Errorf("%s is not set (export it or add it to .env)", config.EnvAPIKey)
	}
	return cfg, apiKey, nil
}

// waitForResult polls the results endpoint on the configured cadence
// until the execution finishes or the attempt budget runs out.
func waitForResult(ctx context.Context, cfg *config.Config, client *promptlayer.Client, executionID string) (string, error) {
	pollCfg := poll.Config{
		Interval:    time.Duration(cfg.PollIntervalSeconds) * time.Second,
		MaxAttempts: cfg.PollAttempts,
	}

	fmt.Printf("%s Polling for results (up to %d attempts, %s apart)\n",
		style.C(style.Blue, "→"), pollCfg.MaxAttempts, pollCfg.Interval)

	return poll.Do(ctx, pollCfg, func() (string, bool, error) {
		return client.ExecutionResult(ctx, executionID)
	})
}

// rememberExecution caches the execution handle so `pitchsmoke poll`
// can resume it later. Cache failures are not worth failing a smoke
// run over.
func rememberExecution(executionID, agent string) {
	err := config.SaveExecution(config.ExecutionCache{
		ExecutionID: executionID,
		Agent:       agent,
	})
	if err != nil {
		log.Warn("could not cache execution ID", "error", err)
	}
}
