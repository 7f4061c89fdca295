package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

// AnalysisStrategy selects the classifier backend. Chosen once at startup,
// never switched mid-session.
type AnalysisStrategy string

const (
	StrategyModel     AnalysisStrategy = "model"
	StrategyLocal     AnalysisStrategy = "local"
	StrategyHeuristic AnalysisStrategy = "heuristic"
)

type ReplyMode string

const (
	ReplyModeLLM      ReplyMode = "llm"
	ReplyModeTemplate ReplyMode = "template"
)

type Config struct {
	// Classification
	AnalysisStrategy AnalysisStrategy `env:"ANALYSIS_STRATEGY" envDefault:"heuristic"`
	ReplyMode        ReplyMode        `env:"REPLY_MODE" envDefault:"template"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Retry policy for rate-limited completion calls
	LLMMaxAttempts    int `env:"LLM_MAX_ATTEMPTS" envDefault:"3"`
	LLMRetryDelaySecs int `env:"LLM_RETRY_DELAY_SECONDS" envDefault:"2"`

	// Local classifier inference server
	ClassifierBaseURL     string `env:"CLASSIFIER_BASE_URL" envDefault:"http://localhost:8085"`
	SentimentModel        string `env:"SENTIMENT_MODEL" envDefault:"distilbert-base-uncased-finetuned-sst-2-english"`
	EmotionModel          string `env:"EMOTION_MODEL" envDefault:"j-hartmann/emotion-english-distilroberta-base"`
	ClassifierTimeoutSecs int    `env:"CLASSIFIER_TIMEOUT_SECONDS" envDefault:"30"`

	// Translation
	TranslateAPIKey      string `env:"GOOGLE_TRANSLATE_API_KEY"`
	TranslateTimeoutSecs int    `env:"TRANSLATE_TIMEOUT_SECONDS" envDefault:"10"`

	// Prompts
	CounselorPromptPath string `env:"COUNSELOR_PROMPT_PATH" envDefault:"prompts/counselor_prompt.txt"`

	// Storage
	DataFilePath string `env:"DATA_FILE_PATH" envDefault:"data/wellbeing.json"`

	// Surfaces
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	HTTPListenAddr   string `env:"HTTP_LISTEN_ADDR" envDefault:":8080"`

	// Daily report schedule (cron spec, UTC)
	ReportCronSpec string `env:"REPORT_CRON_SPEC" envDefault:"0 21 * * *"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
