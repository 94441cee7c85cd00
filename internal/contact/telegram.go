package contact

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// telegramHTTPTimeout bounds every Bot API call, including the startup getMe.
const telegramHTTPTimeout = 10 * time.Second

// TelegramNotifier forwards accepted messages to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authenticates the bot against the Telegram API.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	return NewTelegramNotifierWithClient(token, chatID, tgbotapi.APIEndpoint, &http.Client{Timeout: telegramHTTPTimeout})
}

// NewTelegramNotifierWithClient targets a custom endpoint, formatted like
// tgbotapi.APIEndpoint.
func NewTelegramNotifierWithClient(token string, chatID int64, endpoint string, client tgbotapi.HTTPClient) (*TelegramNotifier, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is not set")
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramNotifier) Name() string { return "telegram" }

// Notify sends the message. Visitor input is HTML-escaped. The Bot API
// client takes no context, so Notify stops waiting when ctx is done and the
// call is left to the HTTP client timeout.
func (t *TelegramNotifier) Notify(ctx context.Context, msg domain.ContactMessage) error {
	text := fmt.Sprintf(
		"📬 <b>New contact message</b>\n"+
			"👤 %s &lt;%s&gt;\n"+
			"📝 <b>%s</b>\n\n"+
			"%s",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)

	m := tgbotapi.NewMessage(t.chatID, text)
	m.ParseMode = tgbotapi.ModeHTML
	m.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := t.bot.Send(m)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("telegram message not confirmed: %w", ctx.Err())
	}
}
