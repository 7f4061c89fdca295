package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"wellbeing-ai/internal/analytics"
	"wellbeing-ai/internal/app"
	"wellbeing-ai/internal/config"
	"wellbeing-ai/internal/httpapi"
	"wellbeing-ai/internal/scheduler"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	sched := scheduler.New()
	sched.SetReportFunction(func(ctx context.Context) error {
		assignments, err := a.Store.RecentAssignments(0)
		if err != nil {
			return err
		}
		chats, err := a.Store.RecentChats(0)
		if err != nil {
			return err
		}
		stats := analytics.AnalyzeDay(assignments, chats, time.Now().UTC())
		log.Println(analytics.FormatReport(stats))
		return nil
	})
	if err := sched.Start(cfg.ReportCronSpec); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	router := httpapi.NewRouter(httpapi.NewHandler(a.Engine))
	log.Printf("🚀 wellbeing server listening on %s (strategy=%s, reply=%s)",
		cfg.HTTPListenAddr, cfg.AnalysisStrategy, cfg.ReplyMode)
	if err := router.Run(cfg.HTTPListenAddr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
