package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Handler implements message handling for Telegram
type Handler struct {
	bot    *Bot
	logger zerolog.Logger

	// Callback for processing messages
	onMessage func(MessageContext) error
}

// MessageContext contains message metadata
type MessageContext struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Username  string
	Text      string
	Timestamp time.Time
}

// NewHandler creates a new message handler
func NewHandler(bot *Bot) *Handler {
	return &Handler{
		bot:    bot,
		logger: bot.logger.With().Str("module", "handler").Logger(),
	}
}

// HandleMessage processes incoming messages. Non-text updates (photos,
// stickers, voice) are ignored at this edge; downstream code relies on the
// text being non-empty.
func (h *Handler) HandleMessage(update tgbotapi.Update) error {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}

	msg := update.Message
	if msg.Text == "" {
		return nil
	}

	ctx := ParseMessage(msg)

	h.logger.Debug().
		Int64("chat_id", ctx.ChatID).
		Int64("user_id", ctx.UserID).
		Str("username", ctx.Username).
		Msg("Message received")

	if h.onMessage != nil {
		return h.onMessage(ctx)
	}

	return nil
}

// ParseMessage extracts the message context from a Telegram message
func ParseMessage(msg *tgbotapi.Message) MessageContext {
	return MessageContext{
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
		UserID:    msg.From.ID,
		Username:  msg.From.UserName,
		Text:      msg.Text,
		Timestamp: time.Unix(int64(msg.Date), 0),
	}
}

// SetOnMessage sets the message callback
func (h *Handler) SetOnMessage(callback func(MessageContext) error) {
	h.onMessage = callback
}
