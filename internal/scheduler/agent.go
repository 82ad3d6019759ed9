package scheduler

import (
	"math/rand"
	"time"

	"github.com/coder/quartz"

	"github.com/desiplay/teenpatti/internal/ai"
	"github.com/desiplay/teenpatti/internal/deck"
	"github.com/desiplay/teenpatti/internal/game"
	"github.com/desiplay/teenpatti/internal/hand"
)

// Agent decides one action for the seat currently on turn. The state
// is the full single-authority state; agents for AI seats may read
// their own cards off it but nothing grants them another seat's.
type Agent interface {
	Act(state *game.State, legal []game.ActionType) (game.Action, error)
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(state *game.State, legal []game.ActionType) (game.Action, error)

func (f AgentFunc) Act(state *game.State, legal []game.ActionType) (game.Action, error) {
	return f(state, legal)
}

// peekChance is the per-turn probability that a blind AI seat looks at
// its cards instead of continuing blind.
const peekChance = 0.5

// sideshowChance gates how often a strong seen hand challenges its
// neighbour when a sideshow is legal.
const sideshowChance = 0.25

// AIAgent plays one seat using the personality decision model. It
// waits out the thinking time on its clock before answering, so the
// table feels like it has a person at it.
type AIAgent struct {
	rng         *rand.Rand
	personality ai.Personality
	clock       quartz.Clock
	thinkScale  float64 // 0 disables the thinking delay (simulations)
}

// NewAIAgent creates an agent for one AI seat.
func NewAIAgent(rng *rand.Rand, personality ai.Personality, clock quartz.Clock, thinkScale float64) *AIAgent {
	return &AIAgent{
		rng:         rng,
		personality: personality,
		clock:       clock,
		thinkScale:  thinkScale,
	}
}

// Act implements Agent.
func (a *AIAgent) Act(state *game.State, legal []game.ActionType) (game.Action, error) {
	player := state.CurrentPlayer()
	if player == nil {
		return game.Action{}, game.ErrPlayerNotActive
	}

	strength := 0.5
	if len(player.Cards) == deck.HandSize {
		if s, err := hand.Strength(player.Cards, state.Session.Variant); err == nil {
			strength = s
		}
	}

	pot := state.Session.Pot
	if pot < 1 {
		pot = 1
	}
	ctx := ai.Context{
		HandStrength:     strength,
		Personality:      a.personality,
		PotOdds:          float64(state.Session.CurrentBet) / float64(pot),
		PlayersRemaining: len(state.ActivePlayers()),
		IsBlind:          player.IsBlind,
		RoundNumber:      state.Session.RoundNumber,
	}

	if a.thinkScale > 0 {
		a.wait(time.Duration(float64(ai.ThinkingTime(a.rng, strength, a.personality)) * a.thinkScale))
	}

	decision := ai.Decide(a.rng, ctx)
	return a.fit(decision, legal, strength), nil
}

// fit maps the model's proposal onto the legal action set: raises
// downgrade to a continuation when short-stacked, blind seats peek
// eventually, and seen continuations turn into show/sideshow when the
// table allows them so heads-up play reaches a verdict.
func (a *AIAgent) fit(d ai.Decision, legal []game.ActionType, strength float64) game.Action {
	has := make(map[game.ActionType]bool, len(legal))
	for _, t := range legal {
		has[t] = true
	}

	action := d.Action
	if action == game.Raise && !has[game.Raise] {
		if has[game.Blind] {
			action = game.Blind
		} else {
			action = game.Chaal
		}
	}

	if action == game.Blind && a.rng.Float64() < peekChance {
		action = game.Chaal
	}

	if action == game.Chaal {
		if has[game.Show] {
			action = game.Show
		} else if has[game.Sideshow] && strength > 0.6 && a.rng.Float64() < sideshowChance {
			action = game.Sideshow
		}
	}

	if !has[action] {
		action = game.Pack
	}
	return game.Action{Type: action}
}

func (a *AIAgent) wait(d time.Duration) {
	done := make(chan struct{})
	timer := a.clock.AfterFunc(d, func() { close(done) })
	defer timer.Stop()
	<-done
}
