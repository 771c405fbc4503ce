package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
	"github.com/aliskhannn/sorting-hat-bot/internal/storage"
)

// handleStart shows the welcome message.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, welcomeMarkdownV2())
		msg.ReplyMarkup = buildStartKeyboard()
		_, err := h.send(msg)
		return err
	}
}

// handleQuiz starts a new quiz, replacing any session the chat had.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startQuiz(chatID)
	}
}

// handleResult shows the result of the chat's last finished quiz.
func (h *Handler) handleResult() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.quizStorage.Get(chatID)
		if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
			return err
		}

		if session == nil || !session.Completed {
			_, err := h.send(newPlainMessage(chatID, msgNoResultYet))
			return err
		}

		if err := h.sendResult(chatID, session); err != nil {
			return err
		}
		h.quizStorage.Store(session)

		return nil
	}
}

// handleHelp lists the available commands.
func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		_, err := h.send(newMessage(chatID, helpMarkdownV2()))
		return err
	}
}

// handleUnknown answers anything the bot does not understand.
func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		_, err := h.send(newPlainMessage(chatID, msgUnknownCommand))
		return err
	}
}

// startQuiz creates a fresh session and shows its first question.
func (h *Handler) startQuiz(chatID int64) error {
	session := h.sortingService.NewSession(chatID)

	h.logger.Debug("quiz session created",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID),
	)

	return h.beginSession(chatID, session)
}

// retakeQuiz replaces the chat's session with a freshly shuffled one.
func (h *Handler) retakeQuiz(chatID int64) error {
	prev, err := h.quizStorage.Get(chatID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return h.startQuiz(chatID)
		}
		return err
	}

	session := h.sortingService.Retake(prev)

	h.logger.Debug("quiz retaken",
		zap.Int64("chat_id", chatID),
		zap.String("previous_session_id", prev.ID),
		zap.String("session_id", session.ID),
	)

	return h.beginSession(chatID, session)
}

func (h *Handler) beginSession(chatID int64, session *entities.QuizSession) error {
	err := h.sendQuestion(chatID, session)
	h.quizStorage.Store(session)
	return err
}
