package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desiplay/teenpatti/internal/deck"
	"github.com/desiplay/teenpatti/internal/hand"
)

func c(suit deck.Suit, rank deck.Rank) deck.Card { return deck.NewCard(suit, rank) }

// makeState builds a mid-round state with known cards so showdown and
// sideshow outcomes are deterministic. Seat 0 holds the turn and every
// seat has already seen its cards unless the test flips IsBlind back.
func makeState(t *testing.T, variant hand.Variant, cardsBySeat ...[]deck.Card) *State {
	t.Helper()
	require.GreaterOrEqual(t, len(cardsBySeat), 2)

	const boot = 10
	players := make([]Player, len(cardsBySeat))
	for i, cards := range cardsBySeat {
		players[i] = Player{
			ID:         fmt.Sprintf("p%d", i),
			UserID:     fmt.Sprintf("u%d", i),
			Name:       fmt.Sprintf("Player %d", i),
			Seat:       i,
			Chips:      990,
			CurrentBet: boot,
			Cards:      cards,
			Status:     StatusPlaying,
			IsBlind:    false,
			IsDealer:   i == len(cardsBySeat)-1,
			IsTurn:     i == 0,
		}
	}

	return &State{
		Session: Session{
			ID:          "session-test",
			RoomID:      "room-test",
			Variant:     variant,
			DealerSeat:  len(cardsBySeat) - 1,
			CurrentTurn: 0,
			Pot:         boot * len(cardsBySeat),
			CurrentBet:  boot,
			BootAmount:  boot,
			Status:      SessionPlaying,
			RoundNumber: 1,
			Players:     players,
		},
		CurrentIndex: 0,
	}
}

func trailHand(rank deck.Rank) []deck.Card {
	return []deck.Card{c(deck.Hearts, rank), c(deck.Spades, rank), c(deck.Clubs, rank)}
}

func junkHand() []deck.Card {
	return []deck.Card{c(deck.Hearts, deck.Two), c(deck.Spades, deck.Five), c(deck.Diamonds, deck.Nine)}
}

func TestProcessActionTurnValidation(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))

	_, err := ProcessAction(state, "p1", Action{Type: Chaal})
	assert.ErrorIs(t, err, ErrNotYourTurn)

	_, err = ProcessAction(state, "nobody", Action{Type: Chaal})
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	state.Session.Players[0].Status = StatusFolded
	_, err = ProcessAction(state, "p0", Action{Type: Chaal})
	assert.ErrorIs(t, err, ErrPlayerNotActive)
}

func TestProcessActionDoesNotMutateInput(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))

	next, err := ProcessAction(state, "p0", Action{Type: Chaal})
	require.NoError(t, err)
	require.NotSame(t, state, next)

	assert.Equal(t, 30, state.Session.Pot, "input pot unchanged")
	assert.Equal(t, 990, state.Session.Players[0].Chips, "input chips unchanged")
	assert.True(t, state.Session.Players[0].IsTurn, "input turn unchanged")
	assert.Nil(t, state.LastAction)
}

func TestBlindContinuation(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))
	state.Session.Players[0].IsBlind = true

	next, err := ProcessAction(state, "p0", Action{Type: Blind})
	require.NoError(t, err)

	p := next.Session.Players[0]
	assert.Equal(t, 990-10, p.Chips, "blind continuation costs the open bet")
	assert.True(t, p.IsBlind, "playing blind keeps the player blind")
	assert.Equal(t, 10, next.Session.CurrentBet)
	assert.Equal(t, 40, next.Session.Pot)
	assert.Equal(t, Blind, next.LastAction.Type)
	assert.True(t, next.Session.Players[1].IsTurn, "turn moved to seat 1")
}

func TestChaalBySeenPlayer(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))

	next, err := ProcessAction(state, "p0", Action{Type: Chaal})
	require.NoError(t, err)

	p := next.Session.Players[0]
	assert.Equal(t, 990-20, p.Chips, "seen continuation costs twice the open bet")
	assert.False(t, p.IsBlind)
	assert.Equal(t, 10, next.Session.CurrentBet, "seen bet normalises back to blind units")
	assert.Equal(t, 50, next.Session.Pot)
}

func TestChaalAfterBlindSeesCards(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))
	state.Session.Players[0].IsBlind = true

	next, err := ProcessAction(state, "p0", Action{Type: Chaal})
	require.NoError(t, err)
	assert.False(t, next.Session.Players[0].IsBlind, "chaal marks the player seen")
}

func TestRaiseBySeenPlayer(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))

	next, err := ProcessAction(state, "p0", Action{Type: Raise})
	require.NoError(t, err)

	p := next.Session.Players[0]
	assert.Equal(t, 990-40, p.Chips, "seen raise costs 4x the open bet")
	assert.False(t, p.IsBlind)
	assert.Equal(t, 20, next.Session.CurrentBet, "raise resets the open bet to half the raised amount")
	assert.Equal(t, 70, next.Session.Pot)
}

func TestRaiseByBlindPlayer(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))
	state.Session.Players[0].IsBlind = true

	next, err := ProcessAction(state, "p0", Action{Type: Raise})
	require.NoError(t, err)

	p := next.Session.Players[0]
	assert.Equal(t, 990-20, p.Chips, "blind raise doubles the blind amount")
	assert.False(t, p.IsBlind, "raising always marks the player seen")
	assert.Equal(t, 10, next.Session.CurrentBet)
}

func TestInsufficientChips(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))
	state.Session.Players[0].Chips = 5

	_, err := ProcessAction(state, "p0", Action{Type: Chaal})
	assert.ErrorIs(t, err, ErrInsufficientChips)

	_, err = ProcessAction(state, "p0", Action{Type: Raise})
	assert.ErrorIs(t, err, ErrInsufficientChips)
}

func TestPackAdvancesAndSkipsFolded(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five), junkHand())
	state.Session.Players[1].Status = StatusFolded

	next, err := ProcessAction(state, "p0", Action{Type: Pack})
	require.NoError(t, err)

	assert.Equal(t, StatusFolded, next.Session.Players[0].Status)
	assert.True(t, next.Session.Players[2].IsTurn, "turn skips the folded seat 1")
	assert.Equal(t, 2, next.CurrentIndex)
}

func TestBootRejected(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four))
	_, err := ProcessAction(state, "p0", Action{Type: Boot})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestLastSeatStandingWins(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	state, err := Initialize(rng, "room1", testSeats(4), 10, hand.VariantClassic)
	require.NoError(t, err)

	// Everyone packs except one seat; no show required.
	for !state.IsGameOver {
		current := state.CurrentPlayer()
		require.NotNil(t, current)
		state, err = ProcessAction(state, current.ID, Action{Type: Pack})
		require.NoError(t, err)
	}

	require.Len(t, state.Winners, 1)
	winner, _ := state.PlayerByID(state.Winners[0])
	require.NotNil(t, winner)
	assert.Equal(t, StatusPlaying, winner.Status)
	assert.Equal(t, SessionFinished, state.Session.Status)

	payouts := DistributePot(state)
	require.Len(t, payouts, 1)
	assert.Equal(t, 40, payouts[0].Amount)
}

func TestShowRequiresTwoActivePlayers(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))
	_, err := ProcessAction(state, "p0", Action{Type: Show})
	assert.ErrorIs(t, err, ErrInvalidShowContext)
}

func TestShowdownResolution(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four))

	// Seat 0 shows; round continues until seat 1 also shows.
	state, err := ProcessAction(state, "p0", Action{Type: Show})
	require.NoError(t, err)
	assert.False(t, state.IsGameOver)
	assert.Equal(t, StatusShow, state.Session.Players[0].Status)
	assert.True(t, state.Session.Players[1].IsTurn)

	state, err = ProcessAction(state, "p1", Action{Type: Show})
	require.NoError(t, err)

	assert.True(t, state.IsGameOver)
	assert.Equal(t, SessionFinished, state.Session.Status)
	require.Len(t, state.Winners, 1)
	assert.Equal(t, "p1", state.Winners[0], "trail beats junk")
}

func TestShowdownMuflisInvertsWinner(t *testing.T) {
	state := makeState(t, hand.VariantMuflis, junkHand(), trailHand(deck.Four))

	state, err := ProcessAction(state, "p0", Action{Type: Show})
	require.NoError(t, err)
	state, err = ProcessAction(state, "p1", Action{Type: Show})
	require.NoError(t, err)

	require.Len(t, state.Winners, 1)
	assert.Equal(t, "p0", state.Winners[0], "muflis: junk beats trail")
}

func TestShowdownTieSplitsPot(t *testing.T) {
	a := []deck.Card{c(deck.Hearts, deck.King), c(deck.Hearts, deck.Nine), c(deck.Spades, deck.Four)}
	b := []deck.Card{c(deck.Diamonds, deck.King), c(deck.Clubs, deck.Nine), c(deck.Diamonds, deck.Four)}
	state := makeState(t, hand.VariantClassic, a, b)
	state.Session.Pot = 25 // odd pot forces a remainder

	state, err := ProcessAction(state, "p0", Action{Type: Show})
	require.NoError(t, err)
	state, err = ProcessAction(state, "p1", Action{Type: Show})
	require.NoError(t, err)

	require.Len(t, state.Winners, 2, "true tie keeps both winners")

	payouts := DistributePot(state)
	require.Len(t, payouts, 2)
	total := 0
	byID := map[string]int{}
	for _, p := range payouts {
		total += p.Amount
		byID[p.PlayerID] = p.Amount
	}
	assert.Equal(t, 25, total, "no chips lost to rounding")
	assert.Equal(t, 13, byID["p0"], "remainder goes to the lowest seat")
	assert.Equal(t, 12, byID["p1"])
}

func TestSideshowValidation(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))

	// Challenger blind.
	state.Session.Players[0].IsBlind = true
	_, err := ProcessAction(state, "p0", Action{Type: Sideshow})
	assert.ErrorIs(t, err, ErrInvalidSideshowContext)
	state.Session.Players[0].IsBlind = false

	// Previous seat blind. Seat 0's predecessor wraps to seat 2.
	state.Session.Players[2].IsBlind = true
	_, err = ProcessAction(state, "p0", Action{Type: Sideshow})
	assert.ErrorIs(t, err, ErrInvalidSideshowContext)
	state.Session.Players[2].IsBlind = false

	// Previous seat folded.
	state.Session.Players[2].Status = StatusFolded
	_, err = ProcessAction(state, "p0", Action{Type: Sideshow})
	assert.ErrorIs(t, err, ErrInvalidSideshowContext)
}

func TestSideshowChallengerWins(t *testing.T) {
	// Seat 1 challenges seat 0 with the stronger hand.
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), junkHand())
	state.Session.Players[0].IsTurn = false
	state.Session.Players[1].IsTurn = true
	state.CurrentIndex = 1
	state.Session.CurrentTurn = 1

	next, err := ProcessAction(state, "p1", Action{Type: Sideshow})
	require.NoError(t, err)

	assert.Equal(t, StatusFolded, next.Session.Players[0].Status, "challenged seat folds on a loss")
	assert.Equal(t, StatusPlaying, next.Session.Players[1].Status)
}

func TestSideshowChallengerLosesOrTies(t *testing.T) {
	// Loss: challenger holds junk against a trail.
	state := makeState(t, hand.VariantClassic, trailHand(deck.Four), junkHand(), junkHand())
	state.Session.Players[0].IsTurn = false
	state.Session.Players[1].IsTurn = true
	state.CurrentIndex = 1
	state.Session.CurrentTurn = 1

	next, err := ProcessAction(state, "p1", Action{Type: Sideshow})
	require.NoError(t, err)
	assert.Equal(t, StatusFolded, next.Session.Players[1].Status, "challenger folds on a loss")

	// Tie: identical strength folds the challenger too.
	a := []deck.Card{c(deck.Hearts, deck.King), c(deck.Hearts, deck.Nine), c(deck.Spades, deck.Four)}
	b := []deck.Card{c(deck.Diamonds, deck.King), c(deck.Clubs, deck.Nine), c(deck.Diamonds, deck.Four)}
	state = makeState(t, hand.VariantClassic, a, b, junkHand())
	state.Session.Players[0].IsTurn = false
	state.Session.Players[1].IsTurn = true
	state.CurrentIndex = 1
	state.Session.CurrentTurn = 1

	next, err = ProcessAction(state, "p1", Action{Type: Sideshow})
	require.NoError(t, err)
	assert.Equal(t, StatusFolded, next.Session.Players[1].Status, "tie folds the challenger")
}

func TestAvailableActions(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four), trailHand(deck.Five))

	actions := state.AvailableActions()
	assert.Contains(t, actions, Pack)
	assert.Contains(t, actions, Chaal)
	assert.Contains(t, actions, Raise)
	assert.NotContains(t, actions, Blind, "seen player cannot play blind")
	assert.NotContains(t, actions, Show, "show needs exactly 2 active players")
	assert.Contains(t, actions, Sideshow, "3 active, self and predecessor seen")

	// Blind player: blind available, show/sideshow not.
	state.Session.Players[0].IsBlind = true
	actions = state.AvailableActions()
	assert.Contains(t, actions, Blind)
	assert.NotContains(t, actions, Sideshow)

	// Heads-up and seen: show available, sideshow not.
	state.Session.Players[0].IsBlind = false
	state.Session.Players[2].Status = StatusFolded
	actions = state.AvailableActions()
	assert.Contains(t, actions, Show)
	assert.NotContains(t, actions, Sideshow)

	// Short stack loses the raise.
	state.Session.Players[0].Chips = 30
	actions = state.AvailableActions()
	assert.NotContains(t, actions, Raise)
}

func TestAvailableActionsEmptyWhenNotPlaying(t *testing.T) {
	state := makeState(t, hand.VariantClassic, junkHand(), trailHand(deck.Four))
	state.Session.Players[0].Status = StatusFolded
	assert.Empty(t, state.AvailableActions())
}
