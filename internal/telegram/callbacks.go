package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Callbacks routes inline keyboard presses to registered handlers
type Callbacks struct {
	bot      *Bot
	logger   zerolog.Logger
	handlers map[string]CallbackFunc
}

// CallbackFunc is a function that handles a callback query
type CallbackFunc func(CallbackContext) error

// CallbackContext contains callback metadata
type CallbackContext struct {
	CallbackID string
	ChatID     int64
	MessageID  int
	UserID     int64
	Data       string
}

// NewCallbacks creates a new callback handler
func NewCallbacks(bot *Bot) *Callbacks {
	return &Callbacks{
		bot:      bot,
		logger:   bot.logger.With().Str("module", "callbacks").Logger(),
		handlers: make(map[string]CallbackFunc),
	}
}

// HandleCallback processes incoming callback queries
func (c *Callbacks) HandleCallback(update tgbotapi.Update) error {
	query := update.CallbackQuery
	if query == nil || query.Message == nil {
		return nil
	}

	ctx := CallbackContext{
		CallbackID: query.ID,
		ChatID:     query.Message.Chat.ID,
		MessageID:  query.Message.MessageID,
		UserID:     query.From.ID,
		Data:       query.Data,
	}

	c.logger.Debug().
		Int64("chat_id", ctx.ChatID).
		Int64("user_id", ctx.UserID).
		Str("data", ctx.Data).
		Msg("Callback received")

	handler, exists := c.handlers[ctx.Data]
	if !exists {
		// Unknown callbacks are acknowledged so the client stops spinning.
		return c.bot.AnswerCallback(ctx.CallbackID)
	}

	return handler(ctx)
}

// Register registers a callback handler for the given callback data
func (c *Callbacks) Register(data string, handler CallbackFunc) {
	c.handlers[data] = handler
	c.logger.Info().Str("data", data).Msg("Callback registered")
}
