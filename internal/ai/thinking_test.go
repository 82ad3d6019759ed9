package ai

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/desiplay/teenpatti/internal/game"
)

func averageThinking(strength float64, p Personality, n int) time.Duration {
	rng := rand.New(rand.NewSource(55))
	var total time.Duration
	for i := 0; i < n; i++ {
		total += ThinkingTime(rng, strength, p)
	}
	return total / time.Duration(n)
}

func TestThinkingTimeFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		d := ThinkingTime(rng, 1.0, Aggressive)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
	}
}

func TestStrongerHandsDecideFaster(t *testing.T) {
	slow := averageThinking(0.1, Balanced, 500)
	fast := averageThinking(0.9, Balanced, 500)
	assert.Less(t, fast, slow)
}

func TestThinkingTimeWithinPersonalityRange(t *testing.T) {
	params := ParamsFor(Conservative)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		d := ThinkingTime(rng, 0.0, Conservative)
		// Weakest hand: full base plus at most half the variance.
		assert.LessOrEqual(t, d, params.ThinkBase+params.ThinkVariance/2+time.Millisecond)
	}
}

func TestTableTalkMentionsPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	line := TableTalk(rng, "Priya", game.Chaal, false)
	assert.Contains(t, line, "Priya")

	bluff := TableTalk(rng, "Bunty", game.Raise, true)
	assert.Contains(t, bluff, "Bunty")
}
