// Package scheduler drives a table of agents through a betting round.
// Every move, AI or human, goes through game.ProcessAction; the
// scheduler only sequences turns, enforces the per-turn timeout and
// publishes events.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/desiplay/teenpatti/internal/game"
)

const (
	// DefaultTurnTimeout is how long a seat may hold the table before
	// it is packed automatically.
	DefaultTurnTimeout = 30 * time.Second

	// defaultMaxActions bounds a runaway round. A real table folds or
	// shows long before this.
	defaultMaxActions = 1000
)

// ErrRoundStalled is returned when a round exceeds its action budget
// without finishing.
var ErrRoundStalled = errors.New("round exceeded maximum actions without finishing")

// Options tune a Runner. Zero values pick sensible defaults.
type Options struct {
	// TurnTimeout is the per-turn deadline. On expiry the seat packs.
	TurnTimeout time.Duration

	// MaxActions caps the number of actions in one round.
	MaxActions int

	// Bus, when set, receives round start, per-action and round end
	// events.
	Bus *game.EventBus
}

// Runner plays rounds to completion.
type Runner struct {
	clock       quartz.Clock
	logger      *log.Logger
	turnTimeout time.Duration
	maxActions  int
	bus         *game.EventBus
}

// New creates a Runner on the given clock.
func New(clock quartz.Clock, logger *log.Logger, opts Options) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TurnTimeout <= 0 {
		opts.TurnTimeout = DefaultTurnTimeout
	}
	if opts.MaxActions <= 0 {
		opts.MaxActions = defaultMaxActions
	}
	return &Runner{
		clock:       clock,
		logger:      logger,
		turnTimeout: opts.TurnTimeout,
		maxActions:  opts.MaxActions,
		bus:         opts.Bus,
	}
}

type agentResult struct {
	action game.Action
	err    error
}

// Run plays the round until it finishes and returns the final state.
// agents maps player IDs to their decision makers; every seat needs
// one. The input state is never mutated.
func (r *Runner) Run(ctx context.Context, state *game.State, agents map[string]Agent) (*game.State, error) {
	for _, p := range state.Session.Players {
		if _, ok := agents[p.ID]; !ok {
			return nil, fmt.Errorf("seat %d (%s) has no agent", p.Seat, p.Name)
		}
	}

	r.publish(game.NewRoundStartEvent(state))

	for actions := 0; !state.IsGameOver; actions++ {
		if actions >= r.maxActions {
			return state, ErrRoundStalled
		}

		current := state.CurrentPlayer()
		if current == nil {
			return state, game.ErrPlayerNotActive
		}

		action, err := r.awaitAction(ctx, state, agents[current.ID], current)
		if err != nil {
			return state, err
		}

		next, err := game.ProcessAction(state, current.ID, action)
		if err != nil {
			if action.Type == game.Pack {
				return state, err
			}
			r.logger.Warn("action rejected, packing seat",
				"player", current.Name, "action", action.Type, "err", err)
			next, err = game.ProcessAction(state, current.ID, game.Action{Type: game.Pack})
			if err != nil {
				return state, err
			}
		}
		state = next
		r.publish(game.NewActionEvent(state))
	}

	r.publish(game.NewRoundEndEvent(state))
	return state, nil
}

// awaitAction asks the agent for a move, packing the seat if the turn
// timer expires first.
func (r *Runner) awaitAction(ctx context.Context, state *game.State, agent Agent, current *game.Player) (game.Action, error) {
	legal := state.AvailableActions()

	results := make(chan agentResult, 1)
	go func() {
		action, err := agent.Act(state, legal)
		results <- agentResult{action: action, err: err}
	}()

	expired := make(chan struct{})
	timer := r.clock.AfterFunc(r.turnTimeout, func() { close(expired) })
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return game.Action{}, ctx.Err()
	case <-expired:
		r.logger.Warn("turn timed out, packing seat", "player", current.Name)
		return game.Action{Type: game.Pack}, nil
	case res := <-results:
		if res.err != nil {
			r.logger.Warn("agent failed, packing seat",
				"player", current.Name, "err", res.err)
			return game.Action{Type: game.Pack}, nil
		}
		return res.action, nil
	}
}

func (r *Runner) publish(event game.GameEvent) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}
