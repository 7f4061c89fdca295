// Package app assembles the wellbeing engine from configuration. All
// binaries (HTTP server, Telegram bot, MCP server) share this wiring.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"wellbeing-ai/internal/analysis"
	"wellbeing-ai/internal/classifier"
	"wellbeing-ai/internal/config"
	"wellbeing-ai/internal/engine"
	"wellbeing-ai/internal/history"
	"wellbeing-ai/internal/llm"
	"wellbeing-ai/internal/reply"
	"wellbeing-ai/internal/store"
	"wellbeing-ai/internal/translate"
)

type App struct {
	Engine *engine.Engine
	Store  *store.FileStore
}

func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	st, err := store.NewFileStore(cfg.DataFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init record store: %w", err)
	}

	normalizer := buildNormalizer(ctx, cfg)
	hist := history.NewManager()

	var llmClient llm.Client
	if needsLLM(cfg) {
		base, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
		llmClient = llm.NewRetryClient(base, cfg.LLMMaxAttempts,
			time.Duration(cfg.LLMRetryDelaySecs)*time.Second)
	}

	strategy, err := buildStrategy(cfg, llmClient)
	if err != nil {
		return nil, err
	}

	replier := buildReplier(cfg, llmClient, hist)

	return &App{
		Engine: engine.New(normalizer, strategy, replier, st, hist),
		Store:  st,
	}, nil
}

func needsLLM(cfg *config.Config) bool {
	return cfg.AnalysisStrategy == config.StrategyModel || cfg.ReplyMode == config.ReplyModeLLM
}

func buildNormalizer(ctx context.Context, cfg *config.Config) *translate.Normalizer {
	if cfg.TranslateAPIKey == "" {
		log.Printf("no translate API key configured, using script-heuristic detection only")
		return translate.NewNormalizer(nil)
	}
	svc, err := translate.NewGoogleService(ctx, cfg.TranslateAPIKey,
		time.Duration(cfg.TranslateTimeoutSecs)*time.Second)
	if err != nil {
		log.Printf("failed to init translation service, degrading to pass-through: %v", err)
		return translate.NewNormalizer(nil)
	}
	return translate.NewNormalizer(svc)
}

func buildStrategy(cfg *config.Config, llmClient llm.Client) (analysis.Strategy, error) {
	switch cfg.AnalysisStrategy {
	case config.StrategyModel:
		return analysis.NewModelStrategy(llmClient), nil
	case config.StrategyLocal:
		c := classifier.NewHTTPClient(
			cfg.ClassifierBaseURL,
			cfg.SentimentModel,
			cfg.EmotionModel,
			time.Duration(cfg.ClassifierTimeoutSecs)*time.Second,
		)
		return analysis.NewLocalModelStrategy(c), nil
	case config.StrategyHeuristic:
		return analysis.NewHeuristicStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown analysis strategy: %s", cfg.AnalysisStrategy)
	}
}

func buildReplier(cfg *config.Config, llmClient llm.Client, hist *history.Manager) reply.Generator {
	if cfg.ReplyMode == config.ReplyModeLLM && llmClient != nil {
		return reply.NewLLMGenerator(llmClient, readCounselorPrompt(cfg.CounselorPromptPath), hist)
	}
	return reply.NewTemplateGenerator()
}

func readCounselorPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("counselor prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
