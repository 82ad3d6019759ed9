package ai

import (
	"fmt"
	"math/rand"

	"github.com/desiplay/teenpatti/internal/game"
)

// Opponent is a stock AI seat.
type Opponent struct {
	UserID      string
	Name        string
	Personality Personality
}

// Roster is the default table of AI opponents.
var Roster = []Opponent{
	{UserID: "ai-sharma", Name: "Sharma Ji", Personality: Conservative},
	{UserID: "ai-priya", Name: "Priya", Personality: Balanced},
	{UserID: "ai-bunty", Name: "Bunty", Personality: Aggressive},
}

var actionLines = map[game.ActionType][]string{
	game.Pack: {
		"%s folded",
		"%s packed their cards",
		"%s is out this round",
	},
	game.Blind: {
		"%s played blind",
		"%s continues blind",
		"%s trusts their luck",
	},
	game.Chaal: {
		"%s called",
		"%s matched the bet",
		"%s is staying in",
	},
	game.Raise: {
		"%s raised!",
		"%s increased the stakes",
		"%s is confident!",
	},
	game.Show: {
		"%s called for a show",
		"%s wants to see cards",
	},
	game.Sideshow: {
		"%s called sideshow",
		"%s challenged their neighbor",
	},
	game.Boot: {
		"%s posted the boot",
		"%s is in",
	},
}

var bluffLines = []string{
	"%s raised! (Bluffing?)",
	"%s bumped it up!",
	"%s is feeling bold!",
}

// TableTalk picks a commentary line for an action, with special
// flavour for suspected bluffs.
func TableTalk(rng *rand.Rand, name string, action game.ActionType, isBluff bool) string {
	lines := actionLines[action]
	if action == game.Raise && isBluff {
		lines = bluffLines
	}
	if len(lines) == 0 {
		return fmt.Sprintf("%s made a move", name)
	}
	return fmt.Sprintf(lines[rng.Intn(len(lines))], name)
}
