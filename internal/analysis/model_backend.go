package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"wellbeing-ai/internal/llm"
)

const classifyPromptTemplate = `You are analyzing a student's writing for signs of emotional distress.

Text: %s

Return a JSON object with:
- risk: one of ["low","medium","high"]
- reason: short explanation
- summary: a one-sentence summary of emotional state

IMPORTANT:
- If the text shows emotional numbness, social withdrawal, or loss of interest, set risk = "high".
- If the text is clearly healthy and positive, set risk = "low".
- Otherwise, set risk = "medium".`

// ModelStrategy classifies via a completion backend. The model's output is
// untrusted: it is brace-scanned for a JSON object and schema-checked, and
// every failure mode degrades to a Medium-tier assessment instead of
// failing the request.
type ModelStrategy struct {
	client      llm.Client
	maxTokens   int
	temperature float32
}

func NewModelStrategy(client llm.Client) *ModelStrategy {
	return &ModelStrategy{
		client:      client,
		maxTokens:   300,
		temperature: 0.2, // reproducibility over creativity for a safety classifier
	}
}

func (s *ModelStrategy) Classify(ctx context.Context, textEN string) RiskAssessment {
	prompt := fmt.Sprintf(classifyPromptTemplate, textEN)
	resp, err := s.client.Generate(ctx,
		[]llm.Message{{Role: "user", Content: prompt}},
		llm.Options{MaxTokens: s.maxTokens, Temperature: s.temperature},
	)
	if err != nil {
		log.Printf("model classification failed: %v", err)
		return RiskAssessment{
			Tier:      TierMedium,
			Rationale: fmt.Sprintf("error: %v", err),
			Summary:   "Fallback analysis",
			Source:    SourceModelBackend,
		}
	}

	assessment, err := parseModelOutput(resp.Content)
	if err != nil {
		log.Printf("could not parse model output: %v", err)
		return RiskAssessment{
			Tier:      TierMedium,
			Rationale: "could not parse output",
			Summary:   strings.TrimSpace(resp.Content),
			Source:    SourceModelBackend,
		}
	}
	return assessment
}

// parseModelOutput extracts the JSON object from the completion text (it
// may be wrapped in a markdown block) and validates the three-field shape.
func parseModelOutput(content string) (RiskAssessment, error) {
	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return RiskAssessment{}, fmt.Errorf("no JSON found in model response")
	}

	var out struct {
		Risk    string `json:"risk"`
		Reason  string `json:"reason"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &out); err != nil {
		return RiskAssessment{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var tier Tier
	switch strings.ToLower(strings.TrimSpace(out.Risk)) {
	case string(TierLow):
		tier = TierLow
	case string(TierMedium):
		tier = TierMedium
	case string(TierHigh):
		tier = TierHigh
	default:
		return RiskAssessment{}, fmt.Errorf("unknown risk value %q", out.Risk)
	}
	if strings.TrimSpace(out.Reason) == "" {
		return RiskAssessment{}, fmt.Errorf("empty reason in model response")
	}

	return RiskAssessment{
		Tier:      tier,
		Rationale: out.Reason,
		Summary:   out.Summary,
		Source:    SourceModelBackend,
	}, nil
}
