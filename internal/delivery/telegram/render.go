package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// renderQuestion renders the current question of a session.
func renderQuestion(session *entities.QuizSession) (string, tgbotapi.InlineKeyboardMarkup, error) {
	q, ok := session.CurrentQuestion()
	if !ok {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("session %s has no current question", session.ID)
	}

	text := formatQuizQuestion(q, session.Current+1, session.TotalQuestions())
	kb := buildQuizAnswerKeyboard(q, session.ID, session.Current)

	return text, kb, nil
}

// sendQuestion sends the current question as a new message.
func (h *Handler) sendQuestion(chatID int64, session *entities.QuizSession) error {
	text, kb, err := renderQuestion(session)
	if err != nil {
		return err
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb

	sent, err := h.send(msg)
	if err != nil {
		return err
	}

	session.MessageID = sent.MessageID
	return nil
}

// editQuestion shows the current question in place of messageID.
func (h *Handler) editQuestion(chatID int64, messageID int, session *entities.QuizSession) error {
	text, kb, err := renderQuestion(session)
	if err != nil {
		return err
	}

	edit := newEdit(chatID, messageID, text)
	edit.ReplyMarkup = &kb

	if _, err := h.send(edit); err != nil {
		return err
	}

	session.MessageID = messageID
	return nil
}

// renderResult renders the result caption and keyboard of a completed session.
func (h *Handler) renderResult(session *entities.QuizSession) (string, tgbotapi.InlineKeyboardMarkup, error) {
	if !session.Completed {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("session %s is not completed", session.ID)
	}

	personality, err := h.personalities.Personality(session.Winner)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("get personality for %s: %w", session.Winner, err)
	}

	text := formatQuizResult(session.Winner, personality)
	link := buildShareLink(h.opts.ShareURL, shareText(session.Winner))
	kb := buildQuizResultKeyboard(session.Winner, link)

	return text, kb, nil
}

// sendResult sends the house image with the result as its caption. Without
// an image the result goes out as a text message.
func (h *Handler) sendResult(chatID int64, session *entities.QuizSession) error {
	text, kb, err := h.renderResult(session)
	if err != nil {
		return err
	}

	if photo, ok := buildHousePhoto(h.opts.ImagesDir, session.Winner, chatID); ok {
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeMarkdownV2
		photo.ReplyMarkup = kb

		sent, err := h.send(*photo)
		if err == nil {
			session.MessageID = sent.MessageID
			return nil
		}
		h.logger.Warn("house image not sent, falling back to text",
			zap.String("house", session.Winner.String()),
			zap.Error(err),
		)
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb

	sent, err := h.send(msg)
	if err != nil {
		return err
	}

	session.MessageID = sent.MessageID
	return nil
}
