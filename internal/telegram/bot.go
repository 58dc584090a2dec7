package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/avolkov/besedka/internal/config"
	"github.com/avolkov/besedka/internal/logger"
)

// Bot represents a Telegram bot instance
type Bot struct {
	api    *tgbotapi.BotAPI
	config *config.TelegramConfig
	logger zerolog.Logger

	// Handlers
	messageHandler  MessageHandler
	commandHandler  CommandHandler
	callbackHandler CallbackHandler

	// State
	running bool
	updates tgbotapi.UpdatesChannel
}

// MessageHandler handles incoming text messages
type MessageHandler interface {
	HandleMessage(update tgbotapi.Update) error
}

// CommandHandler handles bot commands
type CommandHandler interface {
	HandleCommand(update tgbotapi.Update) error
}

// CallbackHandler handles inline keyboard callbacks
type CallbackHandler interface {
	HandleCallback(update tgbotapi.Update) error
}

// New creates a new Telegram bot instance
func New(cfg *config.TelegramConfig, log *logger.Logger) (*Bot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("telegram config is required")
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot := &Bot{
		api:    api,
		config: cfg,
		logger: log.GetZerolog().With().Str("component", "telegram").Logger(),
	}

	bot.logger.Info().
		Str("username", api.Self.UserName).
		Int64("id", api.Self.ID).
		Msg("Telegram bot authenticated")

	return bot, nil
}

// Start starts the bot and begins processing updates
func (b *Bot) Start() error {
	if b.running {
		return fmt.Errorf("bot is already running")
	}

	b.logger.Info().Msg("Starting Telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.updates = updates
	b.running = true

	go b.processUpdates()

	b.logger.Info().Msg("Telegram bot started")

	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	if !b.running {
		return fmt.Errorf("bot is not running")
	}

	b.logger.Info().Msg("Stopping Telegram bot")

	b.running = false
	b.api.StopReceivingUpdates()

	b.logger.Info().Msg("Telegram bot stopped")

	return nil
}

// processUpdates processes incoming updates
func (b *Bot) processUpdates() {
	for update := range b.updates {
		if !b.running {
			break
		}

		// Each update is handled in its own goroutine so one chat's slow
		// completion call does not stall every other chat.
		go func(update tgbotapi.Update) {
			if err := b.handleUpdate(update); err != nil {
				b.logger.Error().
					Err(err).
					Int("update_id", update.UpdateID).
					Msg("Failed to handle update")
			}
		}(update)
	}
}

// handleUpdate routes an update to the appropriate handler
func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.CallbackQuery != nil && b.callbackHandler != nil {
		return b.callbackHandler.HandleCallback(update)
	}

	if update.Message != nil {
		if update.Message.IsCommand() && b.commandHandler != nil {
			return b.commandHandler.HandleCommand(update)
		}

		if b.messageHandler != nil {
			return b.messageHandler.HandleMessage(update)
		}
	}

	return nil
}

// SendMessage sends a text message
func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)

	_, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	b.logger.Debug().
		Int64("chat_id", chatID).
		Msg("Message sent")

	return nil
}

// SendMessageWithKeyboard sends a text message with an inline keyboard
func (b *Bot) SendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard

	_, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	b.logger.Debug().
		Int64("chat_id", chatID).
		Msg("Message sent")

	return nil
}

// EditMessageWithKeyboard replaces the text and keyboard of an existing message
func (b *Bot) EditMessageWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)

	_, err := b.api.Send(edit)
	if err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

// SendTyping sends a typing chat action
func (b *Bot) SendTyping(chatID int64) error {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(action); err != nil {
		return fmt.Errorf("failed to send typing action: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query
func (b *Bot) AnswerCallback(callbackID string) error {
	callback := tgbotapi.NewCallback(callbackID, "")
	if _, err := b.api.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

// SetMessageHandler sets the message handler
func (b *Bot) SetMessageHandler(handler MessageHandler) {
	b.messageHandler = handler
}

// SetCommandHandler sets the command handler
func (b *Bot) SetCommandHandler(handler CommandHandler) {
	b.commandHandler = handler
}

// SetCallbackHandler sets the callback handler
func (b *Bot) SetCallbackHandler(handler CallbackHandler) {
	b.callbackHandler = handler
}

// IsRunning returns whether the bot is running
func (b *Bot) IsRunning() bool {
	return b.running
}
