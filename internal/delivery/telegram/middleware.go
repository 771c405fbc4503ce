package telegram

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc handles one command or callback for a chat.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed route and tells the user something went
// wrong. The error is swallowed so the update loop keeps running.
func (h *Handler) withErrorHandling(route string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		h.logger.Error("quiz route failed",
			zap.String("route", route),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}
