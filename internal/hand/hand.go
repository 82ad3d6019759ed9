// Package hand classifies and compares 3-card Teen Patti hands.
//
// All functions are pure: they never mutate their inputs and carry no
// state, so they are safe to call concurrently from any number of
// sessions.
package hand

import (
	"fmt"
	"sort"

	"github.com/desiplay/teenpatti/internal/deck"
)

// Category is a hand rank category, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	Color
	Sequence
	PureSequence
	Trail
)

// String returns the short name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high_card"
	case Pair:
		return "pair"
	case Color:
		return "color"
	case Sequence:
		return "sequence"
	case PureSequence:
		return "pure_sequence"
	case Trail:
		return "trail"
	default:
		return "unknown"
	}
}

// DisplayName returns the long, player-facing name of the category
func (c Category) DisplayName() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Color:
		return "Color (Flush)"
	case Sequence:
		return "Sequence (Straight)"
	case PureSequence:
		return "Pure Sequence (Straight Flush)"
	case Trail:
		return "Trail (Three of a Kind)"
	default:
		return "Unknown"
	}
}

// Probability returns the display probability string for drawing the
// category from a fresh deck.
func (c Category) Probability() string {
	switch c {
	case HighCard:
		return "74.39%"
	case Pair:
		return "16.94%"
	case Color:
		return "4.96%"
	case Sequence:
		return "3.26%"
	case PureSequence:
		return "0.22%"
	case Trail:
		return "0.24%"
	default:
		return ""
	}
}

// Result is the evaluation of a 3-card hand.
type Result struct {
	Category    Category
	Cards       []deck.Card // sorted descending by value
	HighCard    int         // tie-break key, see Evaluate
	Description string
}

// ErrInvalidHandSize is returned by Evaluate for anything but 3 cards.
type ErrInvalidHandSize int

func (e ErrInvalidHandSize) Error() string {
	return fmt.Sprintf("hand: teen patti requires exactly 3 cards, got %d", int(e))
}

// sortedDesc returns a copy of cards sorted descending by value.
func sortedDesc(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool { return out[i].Value() > out[j].Value() })
	return out
}

// isAceLowRun reports whether sorted (descending) values form A-3-2.
func isAceLowRun(sorted []deck.Card) bool {
	return sorted[0].Value() == 14 && sorted[1].Value() == 3 && sorted[2].Value() == 2
}

func isRun(sorted []deck.Card) bool {
	if isAceLowRun(sorted) {
		return true
	}
	return sorted[0].Value()-sorted[1].Value() == 1 && sorted[1].Value()-sorted[2].Value() == 1
}

func sameSuit(cards []deck.Card) bool {
	return cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit
}

// runHigh returns the tie-break value for a sequence: the top card,
// except the A-3-2 run plays as 3-high, not ace-high.
func runHigh(sorted []deck.Card) int {
	if isAceLowRun(sorted) {
		return 3
	}
	return sorted[0].Value()
}

// Evaluate classifies a 3-card hand. The tie-break HighCard is the top
// card's value, except pairs use the paired value and A-3-2 runs use 3.
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) != deck.HandSize {
		return Result{}, ErrInvalidHandSize(len(cards))
	}

	sorted := sortedDesc(cards)

	// Trail
	if sorted[0].Value() == sorted[1].Value() && sorted[1].Value() == sorted[2].Value() {
		return Result{
			Category:    Trail,
			Cards:       sorted,
			HighCard:    sorted[0].Value(),
			Description: fmt.Sprintf("Trail of %ss", sorted[0].Rank),
		}, nil
	}

	run := isRun(sorted)
	flush := sameSuit(sorted)

	if run && flush {
		return Result{
			Category:    PureSequence,
			Cards:       sorted,
			HighCard:    runHigh(sorted),
			Description: fmt.Sprintf("Pure Sequence %s-%s-%s", sorted[0].Rank, sorted[1].Rank, sorted[2].Rank),
		}, nil
	}

	if run {
		return Result{
			Category:    Sequence,
			Cards:       sorted,
			HighCard:    runHigh(sorted),
			Description: fmt.Sprintf("Sequence %s-%s-%s", sorted[0].Rank, sorted[1].Rank, sorted[2].Rank),
		}, nil
	}

	if flush {
		return Result{
			Category:    Color,
			Cards:       sorted,
			HighCard:    sorted[0].Value(),
			Description: fmt.Sprintf("Color (%s)", sorted[0].Suit.Name()),
		}, nil
	}

	// Pair: after sorting the paired cards are adjacent.
	if sorted[0].Value() == sorted[1].Value() || sorted[1].Value() == sorted[2].Value() {
		pairValue := sorted[1].Value()
		var pairRank deck.Rank
		for _, c := range sorted {
			if c.Value() == pairValue {
				pairRank = c.Rank
				break
			}
		}
		return Result{
			Category:    Pair,
			Cards:       sorted,
			HighCard:    pairValue,
			Description: fmt.Sprintf("Pair of %ss", pairRank),
		}, nil
	}

	return Result{
		Category:    HighCard,
		Cards:       sorted,
		HighCard:    sorted[0].Value(),
		Description: fmt.Sprintf("High Card %s", sorted[0].Rank),
	}, nil
}
