package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/sorting-hat-bot/internal/service"
	"github.com/aliskhannn/sorting-hat-bot/internal/storage"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.answerCallback(cb, "")
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)
	notice := ""

	var fn HandlerFunc
	switch data.Action {
	case actionQuiz:
		switch data.subAction() {
		case quizStart:
			fn = h.handleQuiz()
		case quizRetake:
			fn = func(ctx context.Context, chatID int64) error { return h.retakeQuiz(chatID) }
		case quizAnswer:
			fn = func(ctx context.Context, chatID int64) error {
				var err error
				notice, err = h.handleQuizAnswer(cb, data)
				return err
			}
		}
	case actionShare:
		fn = func(ctx context.Context, chatID int64) error {
			var err error
			notice, err = h.handleShareQR(chatID, data)
			return err
		}
	}

	if fn == nil {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb, "")
		return
	}

	_ = h.withErrorHandling("callback "+data.Action+":"+data.subAction(), fn)(ctx, chatID)

	// Remove the user's "clock".
	h.answerCallback(cb, notice)
}

// handleQuizAnswer records a click on an answer button and shows either the
// next question or the result. The returned notice is shown as a callback
// alert when the click could not be applied.
func (h *Handler) handleQuizAnswer(cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	params, err := data.parseQuizAnswer()
	if err != nil {
		h.logger.Warn("invalid quiz answer callback", zap.String("data", data.Raw))
		return msgInvalidAnswer, nil
	}

	session, err := h.quizStorage.GetByID(chatID, params.SessionID)
	if errors.Is(err, storage.ErrSessionNotFound) {
		edit := newEdit(chatID, messageID, md(msgSessionExpired))
		kb := buildExpiredKeyboard()
		edit.ReplyMarkup = &kb
		if _, err := h.send(edit); err != nil {
			return "", err
		}
		return msgSessionExpired, nil
	}
	if err != nil {
		return "", err
	}

	question, _ := session.CurrentQuestion()

	chosen, err := h.sortingService.AnswerOption(session, params.QuestionNum, params.OptionIndex)
	switch {
	case errors.Is(err, service.ErrStaleQuestion), errors.Is(err, service.ErrSessionCompleted):
		return msgAlreadyAnswered, nil
	case errors.Is(err, service.ErrInvalidOption):
		return msgInvalidAnswer, nil
	case err != nil:
		return "", err
	}

	h.logger.Debug("quiz answer recorded",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID),
		zap.Int("question_num", params.QuestionNum),
		zap.String("house", chosen.House.String()),
	)

	if !session.Completed {
		if err := h.editQuestion(chatID, messageID, session); err != nil {
			h.logger.Warn("question edit failed, sending it as a new message",
				zap.Int64("chat_id", chatID),
				zap.Int("message_id", messageID),
				zap.Error(err),
			)
			// Nothing is stored unless the next question reaches the chat,
			// so the buttons on screen stay answerable.
			if err := h.sendQuestion(chatID, session); err != nil {
				return "", err
			}
		}
		h.quizStorage.Store(session)
		return "", nil
	}

	if _, err := h.send(newEdit(chatID, messageID, formatAnsweredQuestion(question, chosen))); err != nil {
		h.logger.Warn("failed to close last question", zap.Error(err))
	}

	h.logger.Info("quiz completed",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID),
		zap.String("house", session.Winner.String()),
		zap.Any("scores", session.Scores),
	)

	// A completed session is stored even if the result fails to send, so
	// /result can show it again.
	err = h.sendResult(chatID, session)
	h.quizStorage.Store(session)
	return "", err
}

// handleShareQR sends the share link of a result as a QR code image.
func (h *Handler) handleShareQR(chatID int64, data callbackData) (string, error) {
	house, err := data.parseShareQR()
	if err != nil {
		h.logger.Warn("invalid share callback", zap.String("data", data.Raw))
		return msgInvalidAnswer, nil
	}

	png, err := buildShareQR(buildShareLink(h.opts.ShareURL, shareText(house)))
	if err != nil {
		return "", err
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "share-" + house.Slug() + ".png",
		Bytes: png,
	})
	photo.Caption = shareText(house)

	_, err = h.send(photo)
	return "", err
}
