package daemon

import (
	"github.com/avolkov/besedka/internal/telegram"
)

// registerRoutes wires Telegram commands, callbacks and text messages to the
// session store and the orchestrator.
func (d *Daemon) registerRoutes() {
	commands := telegram.NewCommands(d.telegramBot)
	commands.Register("start", d.handleStart)
	commands.Register("help", d.handleHelp)

	callbacks := telegram.NewCallbacks(d.telegramBot)
	callbacks.Register(telegram.ResetCallbackData, d.handleResetCallback)

	handler := telegram.NewHandler(d.telegramBot)
	handler.SetOnMessage(d.handleText)

	d.telegramBot.SetCommandHandler(commands)
	d.telegramBot.SetCallbackHandler(callbacks)
	d.telegramBot.SetMessageHandler(handler)
}

// handleStart resets the user's session and sends the greeting.
func (d *Daemon) handleStart(ctx telegram.CommandContext) error {
	d.resetSession(ctx.UserID)
	return d.telegramBot.SendMessageWithKeyboard(ctx.ChatID, telegram.GreetingText, telegram.ResetKeyboard())
}

// handleHelp sends the usage text. Unlike /start it leaves the session as is.
func (d *Daemon) handleHelp(ctx telegram.CommandContext) error {
	return d.telegramBot.SendMessage(ctx.ChatID, telegram.HelpText)
}

// handleResetCallback resets the session from the inline button and rewrites
// the button's message into a confirmation.
func (d *Daemon) handleResetCallback(ctx telegram.CallbackContext) error {
	d.resetSession(ctx.UserID)

	if err := d.telegramBot.EditMessageWithKeyboard(ctx.ChatID, ctx.MessageID, telegram.ResetConfirmText, telegram.ResetKeyboard()); err != nil {
		d.logger.Warn().Err(err).Int64("chat_id", ctx.ChatID).Msg("Failed to edit reset message")
	}

	return d.telegramBot.AnswerCallback(ctx.CallbackID)
}

// handleText runs one user message through the orchestrator and delivers the
// reply. The user always gets an answer; completion failures arrive as the
// configured apology.
func (d *Daemon) handleText(ctx telegram.MessageContext) error {
	d.metrics.MessagesReceivedTotal.Inc()
	d.store.Ensure(ctx.UserID)

	// Best effort; a failed typing indicator is not worth aborting the reply.
	if err := d.telegramBot.SendTyping(ctx.ChatID); err != nil {
		d.logger.Debug().Err(err).Int64("chat_id", ctx.ChatID).Msg("Failed to send typing action")
	}

	reply := d.orchestrator.Handle(d.ctx, ctx.UserID, ctx.Text)

	if err := d.telegramBot.SendMessageWithKeyboard(ctx.ChatID, reply, telegram.ResetKeyboard()); err != nil {
		d.metrics.TelegramErrorsTotal.Inc()
		return err
	}

	d.metrics.MessagesSentTotal.Inc()
	return nil
}
