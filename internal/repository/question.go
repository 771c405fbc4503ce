package repository

import (
	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// QuestionRepository provides read-only access to the built-in question
// bank and house descriptions.
type QuestionRepository struct {
	questions     []entities.Question
	personalities map[entities.House]string
}

// NewQuestionRepository creates a repository over the built-in data.
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		questions:     questionBank,
		personalities: personalities,
	}
}

// GetAll returns a deep copy of the question bank in its original order.
func (r *QuestionRepository) GetAll() []entities.Question {
	out := make([]entities.Question, len(r.questions))
	for i, q := range r.questions {
		out[i] = q.Clone()
	}
	return out
}

// Count returns the number of questions in the bank.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

// Personality returns the description paragraph for a house.
func (r *QuestionRepository) Personality(h entities.House) (string, error) {
	text, ok := r.personalities[h]
	if !ok {
		return "", entities.ErrUnknownHouse
	}
	return text, nil
}
