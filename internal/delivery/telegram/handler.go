package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var ErrUpdatesClosed = errors.New("telegram updates channel closed")

// Options holds presentation settings for the handler.
type Options struct {
	ImagesDir string // directory with <house slug>.png files
	ShareURL  string // link attached to shared results
}

type Handler struct {
	bot            BotAPI
	logger         *zap.Logger
	sortingService SortingService
	quizStorage    QuizStorage
	personalities  PersonalityRepo
	opts           Options
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	sortingService SortingService,
	quizStorage QuizStorage,
	personalities PersonalityRepo,
	opts Options,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		sortingService: sortingService,
		quizStorage:    quizStorage,
		personalities:  personalities,
		opts:           opts,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return ErrUpdatesClosed
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.withErrorHandling("text", h.handleUnknown())(ctx, chatID)
		return
	}

	cmd := update.Message.Command()
	route := "/" + cmd

	switch cmd {
	case "start":
		_ = h.withErrorHandling(route, h.handleStart())(ctx, chatID)
	case "quiz":
		_ = h.withErrorHandling(route, h.handleQuiz())(ctx, chatID)
	case "result":
		_ = h.withErrorHandling(route, h.handleResult())(ctx, chatID)
	case "help":
		_ = h.withErrorHandling(route, h.handleHelp())(ctx, chatID)
	default:
		_ = h.withErrorHandling(route, h.handleUnknown())(ctx, chatID)
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	if _, err := h.bot.Send(newPlainMessage(chatID, text)); err != nil {
		h.logger.Error("failed to send error message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// send delivers c and returns the resulting message.
func (h *Handler) send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, err := h.bot.Send(c)
	if err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
		return msg, err
	}
	return msg, nil
}

// answerCallback removes the loading state of an inline button, optionally
// showing a short notice.
func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		h.logger.Warn("callback answer error",
			zap.String("callback_id", cb.ID),
			zap.Error(err),
		)
	}
}
