package llm

import "context"

type Message struct {
	Role    string
	Content string
}

// Options bound a single completion call. Zero values mean provider
// defaults. A safety classifier wants a low fixed temperature and a small
// output budget; the counselor reply path uses a higher temperature.
type Options struct {
	MaxTokens   int
	Temperature float32
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client interface {
	Generate(ctx context.Context, messages []Message, opts Options) (Response, error)
}
