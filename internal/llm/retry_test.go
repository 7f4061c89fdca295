package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedClient struct {
	errs  []error
	calls int
}

func (c *scriptedClient) Generate(ctx context.Context, messages []Message, opts Options) (Response, error) {
	i := c.calls
	c.calls++
	if i < len(c.errs) && c.errs[i] != nil {
		return Response{}, c.errs[i]
	}
	return Response{Content: "ok"}, nil
}

func TestRetryClientRetriesRateLimit(t *testing.T) {
	rateErr := errors.New("429: rate limit exceeded")
	inner := &scriptedClient{errs: []error{rateErr, rateErr, nil}}
	rc := NewRetryClient(inner, 3, time.Second)
	var slept int
	rc.sleep = func(time.Duration) { slept++ }

	resp, err := rc.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}}, Options{})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if resp.Content != "ok" {
		t.Fatalf("unexpected content %q", resp.Content)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
	if slept != 2 {
		t.Fatalf("expected 2 sleeps, got %d", slept)
	}
}

func TestRetryClientExhaustsAttempts(t *testing.T) {
	rateErr := errors.New("too many requests")
	inner := &scriptedClient{errs: []error{rateErr, rateErr, rateErr}}
	rc := NewRetryClient(inner, 3, 0)
	rc.sleep = func(time.Duration) {}

	if _, err := rc.Generate(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryClientDoesNotRetryOtherErrors(t *testing.T) {
	inner := &scriptedClient{errs: []error{errors.New("invalid api key")}}
	rc := NewRetryClient(inner, 3, 0)
	rc.sleep = func(time.Duration) { t.Fatal("should not sleep for non-retryable error") }

	if _, err := rc.Generate(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.calls)
	}
}
