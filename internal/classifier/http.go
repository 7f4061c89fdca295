// Package classifier talks to a local text-classification inference server
// (HF pipeline-style API). The models are assumed pre-loaded; callers
// truncate inputs before handing them over.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wellbeing-ai/internal/analysis"
)

type HTTPClient struct {
	baseURL        string
	sentimentModel string
	emotionModel   string
	httpClient     *http.Client
}

func NewHTTPClient(baseURL, sentimentModel, emotionModel string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:        baseURL,
		sentimentModel: sentimentModel,
		emotionModel:   emotionModel,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Sentiment returns the top sentiment label (POSITIVE/NEGATIVE) with its
// confidence.
func (c *HTTPClient) Sentiment(ctx context.Context, text string) (analysis.Prediction, error) {
	preds, err := c.classify(ctx, c.sentimentModel, text)
	if err != nil {
		return analysis.Prediction{}, err
	}
	if len(preds) == 0 {
		return analysis.Prediction{}, fmt.Errorf("sentiment model returned no labels")
	}
	top := preds[0]
	for _, p := range preds[1:] {
		if p.Score > top.Score {
			top = p
		}
	}
	return top, nil
}

// Emotions returns the full label distribution of the emotion model.
func (c *HTTPClient) Emotions(ctx context.Context, text string) ([]analysis.Prediction, error) {
	return c.classify(ctx, c.emotionModel, text)
}

func (c *HTTPClient) classify(ctx context.Context, model, text string) ([]analysis.Prediction, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference call failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference server returned %d: %s", resp.StatusCode, raw)
	}

	// Pipeline responses come as [[{label, score}, ...]] for a single input.
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		return toPredictions(nested[0]), nil
	}
	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("unexpected inference response: %w", err)
	}
	return toPredictions(flat), nil
}

func toPredictions(in []labelScore) []analysis.Prediction {
	out := make([]analysis.Prediction, 0, len(in))
	for _, ls := range in {
		out = append(out, analysis.Prediction{Label: ls.Label, Score: ls.Score})
	}
	return out
}
