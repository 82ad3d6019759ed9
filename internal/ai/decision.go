package ai

import (
	"math/rand"

	"github.com/desiplay/teenpatti/internal/game"
)

// Context is the public information a decision sees. HandStrength
// comes from hand.Strength; nothing here reveals another seat's cards.
type Context struct {
	HandStrength     float64
	Personality      Personality
	PotOdds          float64 // currentBet / pot
	PlayersRemaining int
	IsBlind          bool
	RoundNumber      int
}

// Decision is a proposed action. IsBluff marks a raise made with a
// weak hand so collaborators can flavour their commentary; the engine
// itself treats it like any other raise.
type Decision struct {
	Action  game.ActionType
	IsBluff bool
}

// Decide proposes an action for the given context. The RNG is explicit
// so simulated tables replay exactly.
func Decide(rng *rand.Rand, ctx Context) Decision {
	params := ParamsFor(ctx.Personality)

	continueAction := game.Chaal
	if ctx.IsBlind {
		continueAction = game.Blind
	}

	s := ctx.HandStrength

	// Weak hand: occasionally bluff-raise, usually consider folding.
	if s < params.FoldThreshold {
		if rng.Float64() < params.BluffChance {
			return Decision{Action: game.Raise, IsBluff: true}
		}
		foldProb := (1 - s) * (1 + 0.5*ctx.PotOdds) * (float64(ctx.PlayersRemaining) / 4)
		if rng.Float64() < foldProb*0.8 {
			return Decision{Action: game.Pack}
		}
		return Decision{Action: continueAction}
	}

	// Strong hand: raise unless slow-playing.
	if s > params.RaiseThreshold {
		if rng.Float64() < params.SlowPlayChance {
			return Decision{Action: continueAction}
		}
		return Decision{Action: game.Raise}
	}

	// Medium: raise probability climbs linearly from 0 at the fold
	// threshold to 0.3 at the raise threshold.
	span := params.RaiseThreshold - params.FoldThreshold
	raiseProb := 0.0
	if span > 0 {
		raiseProb = 0.3 * (s - params.FoldThreshold) / span
	}
	if rng.Float64() < raiseProb {
		return Decision{Action: game.Raise}
	}
	return Decision{Action: continueAction}
}
