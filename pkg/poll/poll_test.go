package poll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Interval:    5 * time.Millisecond,
		MaxAttempts: 5,
	}
}

func TestDoReadyFirstAttempt(t *testing.T) {
	ctx := context.Background()

	calls := 0
	result, err := Do(ctx, testConfig(), func() (string, bool, error) {
		calls++
		return "done", true, nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "done" {
		t.Errorf("expected 'done', got %q", result)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDoNotReadyThenReady(t *testing.T) {
	ctx := context.Background()

	calls := 0
	result, err := Do(ctx, testConfig(), func() (string, bool, error) {
		calls++
		if calls < 3 {
			return "", false, nil
		}
		return "done", true, nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "done" {
		t.Errorf("expected 'done', got %q", result)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDoErrorConsumesAttempt(t *testing.T) {
	ctx := context.Background()

	calls := 0
	result, err := Do(ctx, testConfig(), func() (string, bool, error) {
		calls++
		if calls == 1 {
			return "", false, errors.New("transient")
		}
		return "done", true, nil
	})

	if err != nil {
		t.Errorf("expected error to be swallowed, got %v", err)
	}
	if result != "done" {
		t.Errorf("expected 'done', got %q", result)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestDoExhausted(t *testing.T) {
	ctx := context.Background()

	calls := 0
	_, err := Do(ctx, testConfig(), func() (string, bool, error) {
		calls++
		return "", false, nil
	})

	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 calls, got %d", calls)
	}
}

func TestDoAllErrorsExhausted(t *testing.T) {
	ctx := context.Background()

	calls := 0
	_, err := Do(ctx, testConfig(), func() (string, bool, error) {
		calls++
		return "", false, errors.New("always fails")
	})

	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 calls, got %d", calls)
	}
}

func TestDoContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{
		Interval:    100 * time.Millisecond,
		MaxAttempts: 10,
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, cfg, func() (string, bool, error) {
		return "", false, nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != 5*time.Second {
		t.Errorf("expected Interval 5s, got %v", cfg.Interval)
	}
	if cfg.MaxAttempts != 30 {
		t.Errorf("expected MaxAttempts 30, got %d", cfg.MaxAttempts)
	}
}
