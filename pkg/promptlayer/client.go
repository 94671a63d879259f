// Package promptlayer is a thin client for the PromptLayer workflow
// API: start a named workflow run, then poll its execution results.
package promptlayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.promptlayer.com"

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// RunRequest is the body for POST /workflows/{agent}/run.
// WorkflowLabelName selects the versioned configuration to execute;
// when empty the service runs whatever version the label-less default
// points at.
type RunRequest struct {
	WorkflowLabelName string            `json:"workflow_label_name,omitempty"`
	InputVariables    map[string]string `json:"input_variables"`
	ReturnAllOutputs  bool              `json:"return_all_outputs"`
}

// RunResponse is the submit acknowledgement. The execution ID is the
// opaque handle later passed to ExecutionResult.
type RunResponse struct {
	Success                    bool   `json:"success"`
	Message                    string `json:"message"`
	WorkflowVersionExecutionID string `json:"workflow_version_execution_id"`
}

// RunWorkflow starts a workflow execution and returns its handle. A
// non-2xx status, success=false, or a missing execution ID are all
// terminal errors with no retry.
func (c *Client) RunWorkflow(ctx context.Context, agent string, runReq RunRequest) (*RunResponse, error) {
	body, err := json.Marshal(runReq)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/workflows/%s/run", c.BaseURL, url.PathEscape(agent))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("workflow run failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var run RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, fmt.Errorf("decoding run response: %w", err)
	}

	if !run.Success {
		msg := run.Message
		if msg == "" {
			msg = "failed to start workflow execution"
		}
		return nil, fmt.Errorf("workflow run rejected: %s", msg)
	}
	if run.WorkflowVersionExecutionID == "" {
		return nil, fmt.Errorf("workflow run response missing execution ID")
	}

	return &run, nil
}

// ExecutionResult checks whether an execution has finished. The
// results endpoint returns a bare JSON string once the run completes
// and some other shape while it is still in progress, so a body that
// decodes to a string means ready. Errors here are transient from the
// caller's point of view; the poll loop logs and moves on.
func (c *Client) ExecutionResult(ctx context.Context, executionID string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/workflow-version-execution-results?workflow_version_execution_id=%s",
		c.BaseURL, url.QueryEscape(executionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, err
	}
	req.Header.Set("X-API-KEY", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, fmt.Errorf("results request failed: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, err
	}

	var result string
	if err := json.Unmarshal(data, &result); err != nil {
		// Not a bare string yet, the execution is still running
		return "", false, nil
	}
	return result, true, nil
}
