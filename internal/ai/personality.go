// Package ai implements the personality-driven decision model for
// non-human seats. Decisions are pure functions of public context plus
// an explicit RNG; the caller (scheduler) owns timing and submits the
// chosen action through the normal validation path.
package ai

import "time"

// Personality selects a decision profile.
type Personality string

const (
	Conservative Personality = "conservative"
	Balanced     Personality = "balanced"
	Aggressive   Personality = "aggressive"
)

// Valid reports whether p names a known personality.
func (p Personality) Valid() bool {
	switch p {
	case Conservative, Balanced, Aggressive:
		return true
	}
	return false
}

// Params is the static tuning for one personality. Thresholds apply to
// the [0,1] hand strength scalar.
type Params struct {
	FoldThreshold  float64
	RaiseThreshold float64
	BluffChance    float64
	SlowPlayChance float64
	ThinkBase      time.Duration
	ThinkVariance  time.Duration
}

var personalityParams = map[Personality]Params{
	Conservative: {
		FoldThreshold:  0.35,
		RaiseThreshold: 0.75,
		BluffChance:    0.05,
		SlowPlayChance: 0.25,
		ThinkBase:      2500 * time.Millisecond,
		ThinkVariance:  1500 * time.Millisecond,
	},
	Balanced: {
		FoldThreshold:  0.25,
		RaiseThreshold: 0.65,
		BluffChance:    0.12,
		SlowPlayChance: 0.15,
		ThinkBase:      2000 * time.Millisecond,
		ThinkVariance:  1200 * time.Millisecond,
	},
	Aggressive: {
		FoldThreshold:  0.15,
		RaiseThreshold: 0.55,
		BluffChance:    0.25,
		SlowPlayChance: 0.08,
		ThinkBase:      1200 * time.Millisecond,
		ThinkVariance:  800 * time.Millisecond,
	},
}

// ParamsFor returns the tuning for a personality, falling back to
// balanced for anything unknown.
func ParamsFor(p Personality) Params {
	if params, ok := personalityParams[p]; ok {
		return params
	}
	return personalityParams[Balanced]
}
