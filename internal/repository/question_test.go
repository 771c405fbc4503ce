package repository

import (
	"errors"
	"testing"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

func TestQuestionBankHasOneOptionPerHouse(t *testing.T) {
	repo := NewQuestionRepository()
	questions := repo.GetAll()

	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	for i, q := range questions {
		if len(q.Options) != len(entities.Houses) {
			t.Fatalf("question %d: expected %d options, got %d", i, len(entities.Houses), len(q.Options))
		}
		for _, h := range entities.Houses {
			if _, ok := q.OptionFor(h); !ok {
				t.Errorf("question %d has no option for %s", i, h)
			}
		}
	}
}

func TestGetAllReturnsCopies(t *testing.T) {
	repo := NewQuestionRepository()

	first := repo.GetAll()
	first[0].Prompt = "changed"
	first[0].Options[0].House = entities.Slytherin

	second := repo.GetAll()
	if second[0].Prompt == "changed" {
		t.Fatal("prompt change leaked into the bank")
	}
	if second[0].Options[0].House != entities.Gryffindor {
		t.Fatal("option change leaked into the bank")
	}
}

func TestPersonality(t *testing.T) {
	repo := NewQuestionRepository()

	for _, h := range entities.Houses {
		text, err := repo.Personality(h)
		if err != nil {
			t.Fatalf("personality for %s: %v", h, err)
		}
		if text == "" {
			t.Errorf("empty personality for %s", h)
		}
	}

	if _, err := repo.Personality("Muggle"); !errors.Is(err, entities.ErrUnknownHouse) {
		t.Fatalf("expected ErrUnknownHouse, got %v", err)
	}
}
