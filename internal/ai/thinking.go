package ai

import (
	"math/rand"
	"time"
)

// minThinkingTime keeps even snap decisions readable at the table.
const minThinkingTime = 500 * time.Millisecond

// ThinkingTime models how long a seat ponders before acting: stronger
// hands decide faster (0.5-1.0x of the personality's base), with
// symmetric random jitter. Purely presentational; the engine never
// waits on it itself.
func ThinkingTime(rng *rand.Rand, strength float64, personality Personality) time.Duration {
	params := ParamsFor(personality)

	factor := 1.0 - 0.5*strength
	base := time.Duration(float64(params.ThinkBase) * factor)

	jitter := time.Duration((rng.Float64() - 0.5) * float64(params.ThinkVariance))

	d := base + jitter
	if d < minThinkingTime {
		d = minThinkingTime
	}
	return d
}
