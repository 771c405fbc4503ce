package entities

import (
	"errors"
	"strings"
)

// ErrUnknownHouse is returned for a house outside the four known ones.
var ErrUnknownHouse = errors.New("unknown house")

// House is one of the four scoring buckets an answer can belong to.
type House string

const (
	Gryffindor House = "Gryffindor"
	Hufflepuff House = "Hufflepuff"
	Ravenclaw  House = "Ravenclaw"
	Slytherin  House = "Slytherin"
)

// Houses lists every house in the fixed enumeration order used for
// scoring and tie-breaks.
var Houses = []House{Gryffindor, Hufflepuff, Ravenclaw, Slytherin}

// Slug returns the lowercased house name, used to address static assets.
func (h House) Slug() string {
	return strings.ToLower(string(h))
}

func (h House) String() string {
	return string(h)
}

// Valid reports whether h is one of the four known houses.
func (h House) Valid() bool {
	for _, known := range Houses {
		if h == known {
			return true
		}
	}
	return false
}

// ParseHouse resolves a house by name, case-insensitively.
func ParseHouse(s string) (House, bool) {
	s = strings.TrimSpace(s)
	for _, h := range Houses {
		if strings.EqualFold(s, string(h)) {
			return h, true
		}
	}
	return "", false
}

// Scores maps every house to the number of answers given for it.
type Scores map[House]int

// NewScores returns a score table with all four houses set to zero.
func NewScores() Scores {
	s := make(Scores, len(Houses))
	for _, h := range Houses {
		s[h] = 0
	}
	return s
}

// Max returns the highest score in the table.
func (s Scores) Max() int {
	best := 0
	for _, h := range Houses {
		if s[h] > best {
			best = s[h]
		}
	}
	return best
}

// Leaders returns the houses sharing the highest score, in enumeration order.
func (s Scores) Leaders() []House {
	best := s.Max()
	leaders := make([]House, 0, len(Houses))
	for _, h := range Houses {
		if s[h] == best {
			leaders = append(leaders, h)
		}
	}
	return leaders
}
