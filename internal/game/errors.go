package game

import "errors"

// Engine errors. All are synchronous and recoverable: an illegal action
// is rejected, the state is left untouched and the caller re-prompts.
var (
	ErrNotYourTurn            = errors.New("game: not your turn")
	ErrPlayerNotActive        = errors.New("game: player cannot act")
	ErrPlayerNotFound         = errors.New("game: player not found")
	ErrInsufficientChips      = errors.New("game: not enough chips")
	ErrInvalidShowContext     = errors.New("game: show requires exactly 2 active players")
	ErrInvalidSideshowContext = errors.New("game: sideshow requires both players seen and active")
	ErrInvalidAction          = errors.New("game: action cannot be submitted")
	ErrNotEnoughPlayers       = errors.New("game: at least 2 players required")
	ErrInvalidBoot            = errors.New("game: boot amount must be positive and affordable")
)
