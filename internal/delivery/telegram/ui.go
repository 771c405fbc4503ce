package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// buildStartKeyboard builds keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎩 Start the quiz", buildQuizStartCallback()),
		),
	)
}

// buildQuizAnswerKeyboard builds one button per option of a quiz question.
func buildQuizAnswerKeyboard(q *entities.Question, sessionID string, questionNum int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		callbackData := buildQuizAnswerCallback(sessionID, questionNum, i)
		button := tgbotapi.NewInlineKeyboardButtonData(option.Text, callbackData)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard(winner entities.House, shareLink string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Retake Quiz", buildQuizRetakeCallback()),
			tgbotapi.NewInlineKeyboardButtonURL("📣 Share", shareLink),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔳 Share as QR code", buildShareQRCallback(winner)),
		),
	)
}

// buildExpiredKeyboard offers a new quiz after a session was dropped.
func buildExpiredKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎩 New quiz", buildQuizStartCallback()),
		),
	)
}
