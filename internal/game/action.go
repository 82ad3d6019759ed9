package game

// ActionType represents a player action
type ActionType int

const (
	// Boot only appears in action records: the ante is committed by
	// Initialize for every seat and is never submitted through
	// ProcessAction.
	Boot ActionType = iota
	Blind
	Chaal
	Raise
	Pack
	Show
	Sideshow
)

func (a ActionType) String() string {
	return [...]string{"boot", "blind", "chaal", "raise", "pack", "show", "sideshow"}[a]
}

// Action is a submitted player action. Amount is only meaningful for
// Blind, Chaal and Raise; zero means "use the table's computed amount".
type Action struct {
	Type   ActionType
	Amount int
}

// ActionRecord is the last applied action, kept on the state for
// collaborators to read off.
type ActionRecord struct {
	PlayerID string
	Type     ActionType
	Amount   int
}
