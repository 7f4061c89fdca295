package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wellbeing-ai/internal/engine"
)

const resetCmd = "reset_ctx"

// Bot is the student-facing chat surface. Every message runs through the
// wellbeing engine; urgent turns get a distinct warning on top of the
// escalation reply.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *engine.Engine
}

func New(botToken string, eng *engine.Engine) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		engine: eng,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Incoming message from %d (@%s)", msg.From.ID, msg.From.UserName)

	sessionID := sessionFor(msg.From.ID)
	res, err := b.engine.SendChatMessage(ctx, sessionID, msg.Text)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyInput) {
			b.sendMessage(msg.Chat.ID, "Please type something first.")
			return
		}
		log.Printf("failed to process chat message: %v", err)
		b.sendMessage(msg.Chat.ID, "Sorry, something went wrong. Please try again.")
		return
	}

	log.Printf("chat reply [session=%s, lang=%s, urgent=%v]",
		sessionID, res.Exchange.DetectedLanguage, res.Exchange.UrgentFlag)

	// Reply with inline button to reset context
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Start over", resetCmd),
		),
	)

	msgOut := tgbotapi.NewMessage(msg.Chat.ID, res.Exchange.ReplyLocal)
	msgOut.ReplyMarkup = kb
	if _, err := b.api.Send(msgOut); err != nil {
		log.Printf("failed to send message: %v", err)
	}

	if res.Exchange.UrgentFlag {
		b.sendMessage(msg.Chat.ID, "⚠️ This sounds urgent. Please reach out to someone you trust right now.")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Data == resetCmd {
		b.engine.ResetSession(sessionFor(cb.From.ID))
		edit := tgbotapi.NewMessage(cb.Message.Chat.ID, "Conversation context cleared.")
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("failed to send reset confirmation: %v", err)
		}
		return
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func sessionFor(userID int64) string {
	return fmt.Sprintf("tg-%d", userID)
}
