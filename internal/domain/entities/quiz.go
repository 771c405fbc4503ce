package entities

import "time"

// QuizSession is the state of one pass through the quiz for a chat.
// It is replaced wholesale on retake and never shared between chats.
type QuizSession struct {
	ID        string     // unique session ID, embedded into callback data
	ChatID    int64      // chat that owns the session
	Questions []Question // shuffled questions with shuffled options
	Current   int        // index of the question being shown
	Scores    Scores     // answers given per house
	Completed bool       // set once the last question is answered
	Winner    House      // resolved house, empty until Completed
	MessageID int        // last message rendered for this session (0 if none)
	StartedAt time.Time
	UpdatedAt time.Time
}

// NewQuizSession creates a session over already shuffled questions.
func NewQuizSession(id string, chatID int64, questions []Question, now time.Time) *QuizSession {
	return &QuizSession{
		ID:        id,
		ChatID:    chatID,
		Questions: questions,
		Scores:    NewScores(),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// TotalQuestions returns the number of questions in the session.
func (qs *QuizSession) TotalQuestions() int {
	return len(qs.Questions)
}

// CurrentQuestion returns the question being shown, or false once the
// session is complete.
func (qs *QuizSession) CurrentQuestion() (*Question, bool) {
	if qs.Completed || qs.Current < 0 || qs.Current >= len(qs.Questions) {
		return nil, false
	}
	return &qs.Questions[qs.Current], true
}

// QuestionAt returns the question at display position idx (0-based).
func (qs *QuizSession) QuestionAt(idx int) (*Question, bool) {
	if idx < 0 || idx >= len(qs.Questions) {
		return nil, false
	}
	return &qs.Questions[idx], true
}

// Complete marks the session as finished with the given winner.
func (qs *QuizSession) Complete(winner House, now time.Time) {
	qs.Winner = winner
	qs.Completed = true
	qs.UpdatedAt = now
}

// Touch records activity on the session.
func (qs *QuizSession) Touch(now time.Time) {
	qs.UpdatedAt = now
}

// Clone returns a deep copy of the session.
func (qs *QuizSession) Clone() *QuizSession {
	c := *qs

	c.Questions = make([]Question, len(qs.Questions))
	for i, q := range qs.Questions {
		c.Questions[i] = q.Clone()
	}

	c.Scores = make(Scores, len(qs.Scores))
	for h, v := range qs.Scores {
		c.Scores[h] = v
	}

	return &c
}
