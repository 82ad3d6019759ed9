package game

import "github.com/desiplay/teenpatti/internal/deck"

// PlayerStatus represents a seat's state within a round
type PlayerStatus int

const (
	StatusWaiting PlayerStatus = iota
	StatusPlaying
	StatusFolded
	StatusAllIn
	StatusShow
)

func (s PlayerStatus) String() string {
	return [...]string{"waiting", "playing", "folded", "all_in", "show"}[s]
}

// Player is one seat in a round.
type Player struct {
	ID         string
	UserID     string
	Name       string
	Seat       int // 0-based, fixed for the round
	Chips      int // chips in play; only decreases via committed bets
	CurrentBet int // committed this round, including the boot
	Cards      []deck.Card
	Status     PlayerStatus
	IsBlind    bool // has not looked at own cards
	IsDealer   bool
	IsTurn     bool
}

// Active reports whether the player is still contesting the pot.
func (p *Player) Active() bool {
	return p.Status == StatusPlaying || p.Status == StatusShow
}

func (p *Player) clone() Player {
	out := *p
	if p.Cards != nil {
		out.Cards = make([]deck.Card, len(p.Cards))
		copy(out.Cards, p.Cards)
	}
	return out
}
