package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// tieBreakQuestion is the display position (0-based) of the question
// consulted when houses tie.
const tieBreakQuestion = 4

var (
	ErrSessionCompleted = errors.New("quiz session is already completed")
	ErrStaleQuestion    = errors.New("answer is for a question that is no longer shown")
	ErrInvalidOption    = errors.New("invalid option index")
)

// QuestionRepo provides the question bank.
type QuestionRepo interface {
	GetAll() []entities.Question
}

// SortingService runs the house quiz: it builds shuffled sessions, records
// answers and resolves the winning house.
type SortingService struct {
	questions QuestionRepo
	rnd       Rand
	now       func() time.Time
	newID     func() string
}

// Option configures a SortingService.
type Option func(*SortingService)

// WithRand sets the randomness source. Tests pass a seeded *rand.Rand.
func WithRand(r Rand) Option {
	return func(s *SortingService) { s.rnd = r }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *SortingService) { s.now = now }
}

// NewSortingService creates a SortingService over the given question bank.
func NewSortingService(questions QuestionRepo, opts ...Option) *SortingService {
	s := &SortingService{
		questions: questions,
		rnd:       globalRand{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSession starts a fresh session for chatID: every question gets its own
// option order, then the question order is shuffled.
func (s *SortingService) NewSession(chatID int64) *entities.QuizSession {
	bank := s.questions.GetAll()

	questions := make([]entities.Question, len(bank))
	for i, q := range bank {
		questions[i] = entities.Question{
			Prompt:  q.Prompt,
			Options: Shuffle(s.rnd, q.Options),
		}
	}
	questions = Shuffle(s.rnd, questions)

	return entities.NewQuizSession(s.newID(), chatID, questions, s.now())
}

// Retake discards the given session and returns a new one for the same chat.
func (s *SortingService) Retake(session *entities.QuizSession) *entities.QuizSession {
	return s.NewSession(session.ChatID)
}

// Answer records one answer for house and moves the session forward.
// After the last question it resolves the winner and completes the session.
func (s *SortingService) Answer(session *entities.QuizSession, house entities.House) error {
	if session.Completed {
		return ErrSessionCompleted
	}
	if !house.Valid() {
		return entities.ErrUnknownHouse
	}

	session.Scores[house]++
	session.Touch(s.now())

	if session.Current+1 < session.TotalQuestions() {
		session.Current++
		return nil
	}

	tieBreak, _ := session.QuestionAt(tieBreakQuestion)
	session.Complete(ResolveWinner(s.rnd, session.Scores, tieBreak), s.now())

	return nil
}

// AnswerOption answers the question at display position questionNum
// (0-based) with the option at optionIndex. Clicks on buttons of a question
// that is no longer current are rejected.
func (s *SortingService) AnswerOption(session *entities.QuizSession, questionNum, optionIndex int) (entities.Option, error) {
	if session.Completed {
		return entities.Option{}, ErrSessionCompleted
	}
	if questionNum != session.Current {
		return entities.Option{}, ErrStaleQuestion
	}

	q, ok := session.CurrentQuestion()
	if !ok {
		return entities.Option{}, ErrStaleQuestion
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return entities.Option{}, ErrInvalidOption
	}

	opt := q.Options[optionIndex]
	if err := s.Answer(session, opt.House); err != nil {
		return entities.Option{}, err
	}

	return opt, nil
}

// ResolveWinner picks the winning house from final scores.
//
// A single leader wins outright. On a tie the tie-break question is searched
// for an option of the first leader in enumeration order; when found that
// leader wins, otherwise one of the leaders is picked at random.
func ResolveWinner(r Rand, scores entities.Scores, tieBreak *entities.Question) entities.House {
	leaders := scores.Leaders()
	if len(leaders) == 1 {
		return leaders[0]
	}

	if tieBreak != nil {
		if opt, ok := tieBreak.OptionFor(leaders[0]); ok && containsHouse(leaders, opt.House) {
			return opt.House
		}
	}

	return leaders[r.Intn(len(leaders))]
}

func containsHouse(houses []entities.House, h entities.House) bool {
	for _, candidate := range houses {
		if candidate == h {
			return true
		}
	}
	return false
}
