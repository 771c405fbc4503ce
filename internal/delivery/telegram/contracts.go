package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type SortingService interface {
	NewSession(chatID int64) *entities.QuizSession
	Retake(session *entities.QuizSession) *entities.QuizSession
	AnswerOption(session *entities.QuizSession, questionNum, optionIndex int) (entities.Option, error)
}

type QuizStorage interface {
	Store(session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, error)
	GetByID(chatID int64, sessionID string) (*entities.QuizSession, error)
}

type PersonalityRepo interface {
	Personality(h entities.House) (string, error)
}
