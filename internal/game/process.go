package game

import (
	"fmt"

	"github.com/desiplay/teenpatti/internal/hand"
)

// BetAmount computes what a continuation costs the given player: a
// blind player pays the open bet, a seen player pays double, and a
// raise doubles whichever applies.
func BetAmount(s *State, p *Player, isRaise bool) int {
	base := s.Session.CurrentBet
	if !p.IsBlind {
		base *= 2
	}
	if isRaise {
		base *= 2
	}
	return base
}

// AvailableActions returns the legal actions for the seat currently on
// turn, computed fresh so UI affordances always match what
// ProcessAction will accept.
func (s *State) AvailableActions() []ActionType {
	p := s.CurrentPlayer()
	if p == nil || p.Status != StatusPlaying {
		return nil
	}

	actions := []ActionType{Pack}
	if p.IsBlind {
		actions = append(actions, Blind)
	}
	actions = append(actions, Chaal)

	if p.Chips >= BetAmount(s, p, true) {
		actions = append(actions, Raise)
	}

	active := s.ActivePlayers()
	if len(active) == 2 && !p.IsBlind {
		actions = append(actions, Show)
	}

	if len(active) > 2 && !p.IsBlind {
		prev := s.previousSeat(s.CurrentIndex)
		if prev.Status == StatusPlaying && !prev.IsBlind {
			actions = append(actions, Sideshow)
		}
	}

	return actions
}

// previousSeat returns the seat immediately before idx in table order,
// regardless of status.
func (s *State) previousSeat(idx int) *Player {
	n := len(s.Session.Players)
	return &s.Session.Players[(idx-1+n)%n]
}

// ProcessAction validates and applies one action, returning the new
// state. On any error the input state is returned unchanged. This is
// the single entry point for human and AI seats alike.
func ProcessAction(state *State, playerID string, action Action) (*State, error) {
	player, idx := state.PlayerByID(playerID)
	if player == nil {
		return state, ErrPlayerNotFound
	}
	if !player.IsTurn {
		return state, ErrNotYourTurn
	}
	if player.Status != StatusPlaying {
		return state, ErrPlayerNotActive
	}

	next := state.clone()
	p := &next.Session.Players[idx]

	switch action.Type {
	case Blind, Chaal:
		amount := action.Amount
		if amount == 0 {
			amount = BetAmount(state, player, false)
		}
		if amount > p.Chips {
			return state, ErrInsufficientChips
		}
		p.CurrentBet += amount
		p.Chips -= amount
		p.IsBlind = action.Type == Blind
		next.Session.Pot += amount

		// Normalise to blind-equivalent units: a seen bet is worth
		// half its chips in blind units.
		unit := amount
		if !p.IsBlind {
			unit = amount / 2
		}
		if unit > next.Session.CurrentBet {
			next.Session.CurrentBet = unit
		}

	case Raise:
		amount := action.Amount
		if amount == 0 {
			amount = BetAmount(state, player, true)
		}
		if amount > p.Chips {
			return state, ErrInsufficientChips
		}
		p.CurrentBet += amount
		p.Chips -= amount
		p.IsBlind = false
		next.Session.Pot += amount
		// Half the raised amount keeps subsequent blind-equivalent
		// sizing consistent.
		next.Session.CurrentBet = amount / 2

	case Pack:
		p.Status = StatusFolded
		p.IsTurn = false

	case Show:
		if len(state.ActivePlayers()) != 2 {
			return state, ErrInvalidShowContext
		}
		p.Status = StatusShow
		next.ShowdownPlayers = append(next.ShowdownPlayers, playerID)
		if len(next.ShowdownPlayers) == 2 {
			if err := next.resolveShowdown(); err != nil {
				return state, err
			}
		}

	case Sideshow:
		prev := next.previousSeat(idx)
		if prev.Status != StatusPlaying {
			return state, ErrInvalidSideshowContext
		}
		if p.IsBlind || prev.IsBlind {
			return state, ErrInvalidSideshowContext
		}

		mine, err := hand.Evaluate(p.Cards)
		if err != nil {
			return state, err
		}
		theirs, err := hand.Evaluate(prev.Cards)
		if err != nil {
			return state, err
		}

		// Auto-resolved: the challenged player is not asked. The
		// challenger folds on a loss or a tie, otherwise the
		// challenged seat folds.
		if hand.Compare(mine, theirs, next.Session.Variant) <= 0 {
			p.Status = StatusFolded
		} else {
			prev.Status = StatusFolded
		}

	case Boot:
		return state, fmt.Errorf("%w: boot is committed at initialization", ErrInvalidAction)

	default:
		return state, fmt.Errorf("%w: unknown action %d", ErrInvalidAction, action.Type)
	}

	next.LastAction = &ActionRecord{PlayerID: playerID, Type: action.Type, Amount: action.Amount}

	// Last seat standing wins without a showdown.
	if active := next.ActivePlayers(); len(active) == 1 && !next.IsGameOver {
		next.Winners = []string{active[0].ID}
		next.finish()
	} else if !next.IsGameOver {
		next.advanceTurn()
	}

	return next, nil
}

// advanceTurn moves the turn to the next seat still playing, in seat
// order with wraparound. If no such seat exists within one lap the
// pointer is left alone; the single-survivor check above makes that
// unreachable in practice.
func (s *State) advanceTurn() {
	n := len(s.Session.Players)
	for i := range s.Session.Players {
		s.Session.Players[i].IsTurn = false
	}

	next := (s.CurrentIndex + 1) % n
	for attempts := 0; attempts < n; attempts++ {
		if s.Session.Players[next].Status == StatusPlaying {
			s.Session.Players[next].IsTurn = true
			s.CurrentIndex = next
			s.Session.CurrentTurn = next
			return
		}
		next = (next + 1) % n
	}
}

// resolveShowdown evaluates every hand in the showdown set and marks
// all tied top hands as winners.
func (s *State) resolveShowdown() error {
	inSet := make(map[string]bool, len(s.ShowdownPlayers))
	for _, id := range s.ShowdownPlayers {
		inSet[id] = true
	}

	var entries []hand.Entry
	for i := range s.Session.Players {
		p := &s.Session.Players[i]
		if !inSet[p.ID] {
			continue
		}
		result, err := hand.Evaluate(p.Cards)
		if err != nil {
			return err
		}
		entries = append(entries, hand.Entry{PlayerID: p.ID, Hand: result})
	}

	s.Winners = hand.FindWinners(entries, s.Session.Variant)
	s.finish()
	return nil
}

func (s *State) finish() {
	s.IsGameOver = true
	s.Session.Status = SessionFinished
	for i := range s.Session.Players {
		s.Session.Players[i].IsTurn = false
	}
}

// Payout is one winner's share of the pot.
type Payout struct {
	PlayerID string
	Amount   int
}

// DistributePot splits the pot evenly across the winner set using
// floor division. The remainder, when the split is not exact, goes to
// the winner with the lowest seat index so the rule is deterministic.
func DistributePot(state *State) []Payout {
	if len(state.Winners) == 0 {
		return nil
	}

	share := state.Session.Pot / len(state.Winners)
	remainder := state.Session.Pot - share*len(state.Winners)

	lowestSeat := -1
	seatOf := make(map[string]int, len(state.Winners))
	for _, id := range state.Winners {
		if p, _ := state.PlayerByID(id); p != nil {
			seatOf[id] = p.Seat
			if lowestSeat == -1 || p.Seat < lowestSeat {
				lowestSeat = p.Seat
			}
		}
	}

	payouts := make([]Payout, 0, len(state.Winners))
	for _, id := range state.Winners {
		amount := share
		if seatOf[id] == lowestSeat {
			amount += remainder
		}
		payouts = append(payouts, Payout{PlayerID: id, Amount: amount})
	}
	return payouts
}
