package hand

import (
	"testing"

	"github.com/desiplay/teenpatti/internal/deck"
)

func cards(cs ...deck.Card) []deck.Card { return cs }

func c(suit deck.Suit, rank deck.Rank) deck.Card { return deck.NewCard(suit, rank) }

func TestEvaluateTrail(t *testing.T) {
	result, err := Evaluate(cards(c(deck.Hearts, deck.Two), c(deck.Diamonds, deck.Two), c(deck.Clubs, deck.Two)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != Trail {
		t.Errorf("category = %s, want trail", result.Category)
	}
	if result.HighCard != 2 {
		t.Errorf("highCard = %d, want 2", result.HighCard)
	}
}

func TestEvaluatePureSequence(t *testing.T) {
	result, err := Evaluate(cards(c(deck.Spades, deck.Queen), c(deck.Spades, deck.King), c(deck.Spades, deck.Ace)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != PureSequence {
		t.Errorf("category = %s, want pure_sequence", result.Category)
	}
	if result.HighCard != 14 {
		t.Errorf("highCard = %d, want 14", result.HighCard)
	}
}

func TestEvaluateAceLowRun(t *testing.T) {
	// Mixed suits: plain sequence, plays 3-high not ace-high.
	result, err := Evaluate(cards(c(deck.Hearts, deck.Ace), c(deck.Spades, deck.Two), c(deck.Diamonds, deck.Three)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != Sequence {
		t.Errorf("category = %s, want sequence", result.Category)
	}
	if result.HighCard != 3 {
		t.Errorf("highCard = %d, want 3", result.HighCard)
	}

	// Same suit: pure sequence, still 3-high.
	result, err = Evaluate(cards(c(deck.Clubs, deck.Ace), c(deck.Clubs, deck.Two), c(deck.Clubs, deck.Three)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != PureSequence {
		t.Errorf("category = %s, want pure_sequence", result.Category)
	}
	if result.HighCard != 3 {
		t.Errorf("highCard = %d, want 3", result.HighCard)
	}
}

func TestEvaluateColor(t *testing.T) {
	result, err := Evaluate(cards(c(deck.Spades, deck.Ace), c(deck.Spades, deck.Jack), c(deck.Spades, deck.Nine)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != Color {
		t.Errorf("category = %s, want color", result.Category)
	}
	if result.HighCard != 14 {
		t.Errorf("highCard = %d, want 14", result.HighCard)
	}
}

func TestEvaluatePair(t *testing.T) {
	result, err := Evaluate(cards(c(deck.Hearts, deck.King), c(deck.Spades, deck.King), c(deck.Diamonds, deck.Ace)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != Pair {
		t.Errorf("category = %s, want pair", result.Category)
	}
	// Tie-break is the paired value, not the ace kicker.
	if result.HighCard != 13 {
		t.Errorf("highCard = %d, want 13", result.HighCard)
	}
}

func TestEvaluateHighCard(t *testing.T) {
	result, err := Evaluate(cards(c(deck.Hearts, deck.Two), c(deck.Spades, deck.Nine), c(deck.Diamonds, deck.King)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Category != HighCard {
		t.Errorf("category = %s, want high_card", result.Category)
	}
	if result.HighCard != 13 {
		t.Errorf("highCard = %d, want 13", result.HighCard)
	}
}

func TestEvaluateSortsDescending(t *testing.T) {
	input := cards(c(deck.Hearts, deck.Two), c(deck.Spades, deck.Nine), c(deck.Diamonds, deck.King))
	result, err := Evaluate(input)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{13, 9, 2}
	for i, card := range result.Cards {
		if card.Value() != want[i] {
			t.Errorf("sorted card %d value = %d, want %d", i, card.Value(), want[i])
		}
	}
	// Input order untouched.
	if input[0].Rank != deck.Two || input[2].Rank != deck.King {
		t.Error("Evaluate mutated its input")
	}
}

func TestEvaluateWrongSize(t *testing.T) {
	if _, err := Evaluate(cards(c(deck.Hearts, deck.Two))); err == nil {
		t.Error("expected error for 1-card hand")
	}
	if _, err := Evaluate(nil); err == nil {
		t.Error("expected error for empty hand")
	}
}
