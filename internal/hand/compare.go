package hand

// Variant selects the table rules that affect hand ordering. Only
// muflis reverses the ranking; joker and ak47 share the classic order
// and exist so table configuration can carry them through unchanged.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantJoker   Variant = "joker"
	VariantMuflis  Variant = "muflis"
	VariantAK47    Variant = "ak47"
)

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantClassic, VariantJoker, VariantMuflis, VariantAK47:
		return true
	}
	return false
}

// Compare orders two evaluated hands. It returns >0 if a wins, <0 if b
// wins and 0 on a perfect tie. Under muflis the ordering is exactly
// reversed (lower hands win); ties remain ties in every variant so pot
// splitting sees them.
func Compare(a, b Result, variant Variant) int {
	multiplier := 1
	if variant == VariantMuflis {
		multiplier = -1
	}

	if a.Category != b.Category {
		return int(a.Category-b.Category) * multiplier
	}

	if a.HighCard != b.HighCard {
		return (a.HighCard - b.HighCard) * multiplier
	}

	for i := 0; i < len(a.Cards) && i < len(b.Cards); i++ {
		if av, bv := a.Cards[i].Value(), b.Cards[i].Value(); av != bv {
			return (av - bv) * multiplier
		}
	}

	return 0
}

// Entry associates a player with their evaluated hand for a showdown.
type Entry struct {
	PlayerID string
	Hand     Result
}

// FindWinners returns the player IDs of every hand that is undominated
// under Compare: on a tie for best, all tied players win together.
func FindWinners(entries []Entry, variant Variant) []string {
	if len(entries) == 0 {
		return nil
	}

	best := []Entry{entries[0]}
	for _, e := range entries[1:] {
		switch cmp := Compare(e.Hand, best[0].Hand, variant); {
		case cmp > 0:
			best = []Entry{e}
		case cmp == 0:
			best = append(best, e)
		}
	}

	winners := make([]string, len(best))
	for i, e := range best {
		winners[i] = e.PlayerID
	}
	return winners
}
