package hand

import "github.com/desiplay/teenpatti/internal/deck"

// categoryBase maps each category to the base strength scalar fed to
// the AI model. These are heuristic weights, not win probabilities.
var categoryBase = map[Category]float64{
	Trail:        1.0,
	PureSequence: 0.85,
	Sequence:     0.65,
	Color:        0.5,
	Pair:         0.3,
	HighCard:     0.1,
}

// maxHighCardBonus is the bonus added for the best possible tie-break
// card within a category.
const maxHighCardBonus = 0.15

// Strength maps a 3-card hand to a scalar in [0,1] for the AI decision
// model. Under muflis both the category base and the high-card bonus
// are inverted so the scalar stays ordered consistently with Compare:
// a 2-high hand scores near the top, a trail of aces near the bottom.
func Strength(cards []deck.Card, variant Variant) (float64, error) {
	result, err := Evaluate(cards)
	if err != nil {
		return 0, err
	}

	base := categoryBase[result.Category]

	// High card values span 2..14.
	span := float64(deck.Ace - deck.Two)
	bonus := maxHighCardBonus * float64(result.HighCard-int(deck.Two)) / span

	if variant == VariantMuflis {
		base = 1 - base
		bonus = maxHighCardBonus * float64(int(deck.Ace)-result.HighCard) / span
	}

	strength := base + bonus
	if strength > 1 {
		strength = 1
	}
	if strength < 0 {
		strength = 0
	}
	return strength, nil
}
