package entities

// Option is a single answer choice tagged with the house it scores for.
type Option struct {
	Text  string
	House House
}

// Question is a prompt with its ordered answer choices.
type Question struct {
	Prompt  string
	Options []Option
}

// Clone returns a copy of q that does not share the options slice.
func (q Question) Clone() Question {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	return Question{Prompt: q.Prompt, Options: opts}
}

// OptionFor returns the option scoring for house h, if q has one.
func (q Question) OptionFor(h House) (Option, bool) {
	for _, o := range q.Options {
		if o.House == h {
			return o, true
		}
	}
	return Option{}, false
}
