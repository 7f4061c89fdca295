package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"wellbeing-ai/internal/app"
	"wellbeing-ai/internal/config"
	"wellbeing-ai/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required for the bot surface")
	}

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	bot, err := telegram.New(cfg.TelegramBotToken, a.Engine)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	log.Printf("🚀 wellbeing bot started (strategy=%s, reply=%s)", cfg.AnalysisStrategy, cfg.ReplyMode)
	bot.Start(context.Background())
}
