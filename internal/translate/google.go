package translate

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleService backs the Service interface with the Cloud Translation v2
// API. Every call carries its own timeout.
type GoogleService struct {
	svc     *translate.Service
	timeout time.Duration
}

func NewGoogleService(ctx context.Context, apiKey string, timeout time.Duration) (*GoogleService, error) {
	svc, err := translate.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init translate service: %w", err)
	}
	return &GoogleService{svc: svc, timeout: timeout}, nil
}

func (g *GoogleService) Detect(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.svc.Detections.List([]string{text}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	if len(resp.Detections) == 0 || len(resp.Detections[0]) == 0 {
		return "", fmt.Errorf("detect language: empty response")
	}
	return resp.Detections[0][0].Language, nil
}

func (g *GoogleService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	call := g.svc.Translations.List([]string{text}, targetLang).Format("text")
	if sourceLang != "" && sourceLang != "auto" {
		call = call.Source(sourceLang)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("translate: empty response")
	}
	return resp.Translations[0].TranslatedText, nil
}
