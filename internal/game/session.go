// Package game owns the authoritative state machine for one round of
// Teen Patti. State transitions are pure: ProcessAction returns a new
// state or an error and never mutates its input, so each session can be
// replayed deterministically and sessions are safe to run in parallel.
package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/desiplay/teenpatti/internal/deck"
	"github.com/desiplay/teenpatti/internal/hand"
)

// SessionStatus is the lifecycle of one round
type SessionStatus int

const (
	SessionWaiting SessionStatus = iota
	SessionPlaying
	SessionFinished
)

func (s SessionStatus) String() string {
	return [...]string{"waiting", "playing", "finished"}[s]
}

// Session is the table-visible snapshot of a round.
type Session struct {
	ID          string
	RoomID      string
	Variant     hand.Variant
	DealerSeat  int
	CurrentTurn int
	Pot         int // sum of all committed bets until distribution
	CurrentBet  int // open bet standard, in blind-equivalent units
	BootAmount  int
	Status      SessionStatus
	RoundNumber int
	Players     []Player
	StartedAt   time.Time
	EndedAt     time.Time
}

// State wraps the session with the engine-only bookkeeping a round
// needs: the undealt deck, turn pointer, showdown set and outcome.
type State struct {
	Session         Session
	Deck            deck.Deck
	CurrentIndex    int
	LastAction      *ActionRecord
	ShowdownPlayers []string
	Winners         []string
	IsGameOver      bool
}

// Seat describes one participant joining a round.
type Seat struct {
	UserID string
	Name   string
	Chips  int
}

// Initialize shuffles a fresh deck, deals 3 cards to every seat in seat
// order, picks a dealer uniformly at random and commits the boot from
// every seat. The seat after the dealer gets the first turn.
func Initialize(rng *rand.Rand, roomID string, seats []Seat, bootAmount int, variant hand.Variant) (*State, error) {
	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if bootAmount <= 0 {
		return nil, ErrInvalidBoot
	}
	for _, s := range seats {
		if s.Chips < bootAmount {
			return nil, ErrInvalidBoot
		}
	}

	shuffled := deck.New().Shuffled(rng)
	hands, remaining, err := shuffled.DealHands(len(seats), deck.HandSize)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	dealerSeat := rng.Intn(len(seats))
	firstTurn := (dealerSeat + 1) % len(seats)

	players := make([]Player, len(seats))
	for i, s := range seats {
		players[i] = Player{
			ID:         uuid.NewString(),
			UserID:     s.UserID,
			Name:       s.Name,
			Seat:       i,
			Chips:      s.Chips - bootAmount,
			CurrentBet: bootAmount,
			Cards:      hands[i],
			Status:     StatusPlaying,
			IsBlind:    true,
			IsDealer:   i == dealerSeat,
			IsTurn:     i == firstTurn,
		}
	}

	return &State{
		Session: Session{
			ID:          sessionID,
			RoomID:      roomID,
			Variant:     variant,
			DealerSeat:  dealerSeat,
			CurrentTurn: firstTurn,
			Pot:         bootAmount * len(seats),
			CurrentBet:  bootAmount,
			BootAmount:  bootAmount,
			Status:      SessionPlaying,
			RoundNumber: 1,
			Players:     players,
			StartedAt:   time.Now(),
		},
		Deck:         remaining,
		CurrentIndex: firstTurn,
	}, nil
}

// clone deep-copies the state so transitions never alias the input.
func (s *State) clone() *State {
	out := *s
	out.Session.Players = make([]Player, len(s.Session.Players))
	for i := range s.Session.Players {
		out.Session.Players[i] = s.Session.Players[i].clone()
	}
	if s.ShowdownPlayers != nil {
		out.ShowdownPlayers = append([]string(nil), s.ShowdownPlayers...)
	}
	if s.Winners != nil {
		out.Winners = append([]string(nil), s.Winners...)
	}
	if s.LastAction != nil {
		record := *s.LastAction
		out.LastAction = &record
	}
	return &out
}

// CurrentPlayer returns the seat whose turn it is, or nil once no seat
// is playing.
func (s *State) CurrentPlayer() *Player {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Session.Players) {
		return nil
	}
	any := false
	for i := range s.Session.Players {
		if s.Session.Players[i].Status == StatusPlaying {
			any = true
			break
		}
	}
	if !any {
		return nil
	}
	return &s.Session.Players[s.CurrentIndex]
}

// ActivePlayers returns the seats still contesting the pot (playing or
// having called show).
func (s *State) ActivePlayers() []*Player {
	var active []*Player
	for i := range s.Session.Players {
		if s.Session.Players[i].Active() {
			active = append(active, &s.Session.Players[i])
		}
	}
	return active
}

// PlayerByID finds a player by engine ID.
func (s *State) PlayerByID(playerID string) (*Player, int) {
	for i := range s.Session.Players {
		if s.Session.Players[i].ID == playerID {
			return &s.Session.Players[i], i
		}
	}
	return nil, -1
}

// TotalChips sums chips in play plus the pot; constant across a round
// until distribution, which makes conservation checkable in tests.
func (s *State) TotalChips() int {
	total := s.Session.Pot
	for i := range s.Session.Players {
		total += s.Session.Players[i].Chips
	}
	return total
}
