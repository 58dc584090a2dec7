package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// User-facing texts. The bot speaks Russian.
const (
	GreetingText = "Привет! Я бот с ChatGPT. Пиши любой вопрос - отвечу с учетом контекста.\n" +
		"🔄 /start, /help - сбросить историю\n" +
		"🆕 Кнопка 'Новый запрос' ниже"

	HelpText = "📖 Помощь:\n" +
		"• Пиши любой текст - получу ответ от ChatGPT\n" +
		"• История диалога сохраняется автоматически\n" +
		"• /start, /help или кнопка 'Новый запрос' - сброс контекста\n"

	ResetConfirmText = "✅ История сброшена! Теперь новый диалог.\n" +
		"Пиши вопрос - отвечу с чистого листа."

	resetButtonText = "🆕 Новый запрос"

	// ResetCallbackData identifies the reset button in callback queries.
	ResetCallbackData = "reset_chat"
)

// ResetKeyboard returns the inline keyboard with the single
// "new conversation" button attached to every bot reply.
func ResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(resetButtonText, ResetCallbackData),
		),
	)
}
