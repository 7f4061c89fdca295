package llm

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// RetryClient wraps a Client with a bounded fixed-delay retry loop for
// rate-limit-class failures. Any other error surfaces immediately: the
// degraded-result handling belongs to the caller, not to the transport.
type RetryClient struct {
	inner       Client
	maxAttempts int
	delay       time.Duration
	sleep       func(time.Duration) // swapped in tests
}

func NewRetryClient(inner Client, maxAttempts int, delay time.Duration) *RetryClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryClient{
		inner:       inner,
		maxAttempts: maxAttempts,
		delay:       delay,
		sleep:       time.Sleep,
	}
}

func (c *RetryClient) Generate(ctx context.Context, messages []Message, opts Options) (Response, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err := c.inner.Generate(ctx, messages, opts)
		if err == nil {
			return resp, nil
		}
		if !isRateLimited(err) {
			return Response{}, err
		}
		lastErr = err
		if attempt < c.maxAttempts {
			log.Printf("completion rate limited (attempt %d/%d), retrying in %s: %v",
				attempt, c.maxAttempts, c.delay, err)
			c.sleep(c.delay)
		}
	}
	return Response{}, lastErr
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "too many requests")
}
