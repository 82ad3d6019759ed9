// Package display renders table state for the interactive CLI.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/desiplay/teenpatti/internal/deck"
	"github.com/desiplay/teenpatti/internal/game"
	"github.com/desiplay/teenpatti/internal/hand"
)

// Renderer writes styled table output.
type Renderer struct {
	w      io.Writer
	styles *Styles
}

// New creates a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: NewStyles()}
}

// FormatCard renders a single card with suit colouring.
func (r *Renderer) FormatCard(c deck.Card) string {
	if c.IsRed() {
		return r.styles.CardRed.Render(c.String())
	}
	return r.styles.CardBlack.Render(c.String())
}

// FormatCards renders a hand as a bracketed group.
func (r *Renderer) FormatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.FormatCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (r *Renderer) hiddenCards() string {
	return r.styles.Hidden.Render("[## ## ##]")
}

// ShowRoundHeader prints the round banner.
func (r *Renderer) ShowRoundHeader(state *game.State) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Header.Render(fmt.Sprintf(" TEEN PATTI • %s • boot %s ",
		strings.ToUpper(string(state.Session.Variant)),
		game.FormatChips(state.Session.BootAmount))))
}

// ShowTable prints every seat. The human player's cards are shown once
// they have seen them; everyone else stays face down until showdown.
func (r *Renderer) ShowTable(state *game.State, humanID string) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s  current bet %s\n",
		r.styles.Pot.Render("Pot: "+game.FormatChips(state.Session.Pot)),
		game.FormatChips(state.Session.CurrentBet))

	for i := range state.Session.Players {
		p := &state.Session.Players[i]

		marker := "  "
		if p.IsTurn {
			marker = "> "
		}

		cards := r.hiddenCards()
		if state.IsGameOver || (p.ID == humanID && !p.IsBlind) {
			cards = r.FormatCards(p.Cards)
		}

		tag := ""
		switch {
		case p.Status == game.StatusFolded:
			tag = r.styles.Info.Render(" (packed)")
		case p.IsBlind:
			tag = r.styles.Info.Render(" (blind)")
		case p.Status == game.StatusShow:
			tag = r.styles.Info.Render(" (show)")
		}

		you := ""
		if p.ID == humanID {
			you = r.styles.SubHeader.Render(" (you)")
		}

		fmt.Fprintf(r.w, "%s%-12s%s %s  chips %-8s bet %s%s\n",
			marker, p.Name, you, cards,
			game.FormatChips(p.Chips), game.FormatChips(p.CurrentBet), tag)
	}
}

// ShowAction prints the most recent action.
func (r *Renderer) ShowAction(state *game.State) {
	last := state.LastAction
	if last == nil {
		return
	}
	p, _ := state.PlayerByID(last.PlayerID)
	if p == nil {
		return
	}

	line := fmt.Sprintf("%s: %s", p.Name, last.Type)
	if last.Amount > 0 {
		line += " " + game.FormatChips(last.Amount)
	}
	fmt.Fprintln(r.w, r.styles.Action.Render(line))
}

// ShowTalk prints an AI commentary line.
func (r *Renderer) ShowTalk(line string) {
	fmt.Fprintln(r.w, r.styles.TableTalk.Render(line))
}

// ShowResult prints the showdown and payouts.
func (r *Renderer) ShowResult(state *game.State) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.SubHeader.Render("*** RESULT ***"))

	winners := make(map[string]bool, len(state.Winners))
	for _, id := range state.Winners {
		winners[id] = true
	}

	for i := range state.Session.Players {
		p := &state.Session.Players[i]
		if p.Status == game.StatusFolded {
			fmt.Fprintf(r.w, "  %-12s packed\n", p.Name)
			continue
		}

		desc := ""
		if result, err := hand.Evaluate(p.Cards); err == nil {
			desc = result.Description
		}

		line := fmt.Sprintf("  %-12s %s  %s", p.Name, r.FormatCards(p.Cards), desc)
		if winners[p.ID] {
			line += "  " + r.styles.Winner.Render("WINNER")
		}
		fmt.Fprintln(r.w, line)
	}

	for _, payout := range game.DistributePot(state) {
		p, _ := state.PlayerByID(payout.PlayerID)
		if p == nil {
			continue
		}
		fmt.Fprintf(r.w, "%s\n", r.styles.Winner.Render(
			fmt.Sprintf("  %s wins %s", p.Name, game.FormatChips(payout.Amount))))
	}
}

// ShowPrompt prints the legal actions for the human seat.
func (r *Renderer) ShowPrompt(state *game.State, legal []game.ActionType) {
	p := state.CurrentPlayer()
	if p == nil {
		return
	}

	parts := make([]string, 0, len(legal))
	for _, a := range legal {
		cost := ""
		switch a {
		case game.Blind, game.Chaal:
			cost = fmt.Sprintf(" (%s)", game.FormatChips(game.BetAmount(state, p, false)))
		case game.Raise:
			cost = fmt.Sprintf(" (%s)", game.FormatChips(game.BetAmount(state, p, true)))
		}
		parts = append(parts, fmt.Sprintf("[%s]%s%s", shortcut(a), a, cost))
	}
	fmt.Fprintf(r.w, "\nYour move: %s\n> ", strings.Join(parts, "  "))
}

func shortcut(a game.ActionType) string {
	switch a {
	case game.Blind:
		return "b"
	case game.Chaal:
		return "c"
	case game.Raise:
		return "r"
	case game.Pack:
		return "p"
	case game.Show:
		return "s"
	case game.Sideshow:
		return "x"
	default:
		return "?"
	}
}

// ParseAction maps user input to a legal action.
func ParseAction(input string, legal []game.ActionType) (game.ActionType, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, a := range legal {
		if input == shortcut(a) || input == strings.ToLower(a.String()) {
			return a, true
		}
	}
	return 0, false
}
