// Package simulator plays batches of AI-only rounds to sanity check
// the engine and the decision model. Rounds are independently seeded,
// run in parallel and aggregated into Stats.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/desiplay/teenpatti/internal/ai"
	"github.com/desiplay/teenpatti/internal/game"
	"github.com/desiplay/teenpatti/internal/hand"
	"github.com/desiplay/teenpatti/internal/randutil"
	"github.com/desiplay/teenpatti/internal/scheduler"
)

const (
	// MinSeats and MaxSeats bound the table size.
	MinSeats = 3
	MaxSeats = 6

	defaultChips      = 1000
	defaultBoot       = 10
	roundActionBudget = 2000

	// seedStride decorrelates per-round seeds derived from the base.
	seedStride = 0x9e3779b9
)

// Config describes a simulation batch.
type Config struct {
	Rounds      int
	Seats       int
	Seed        int64
	BootAmount  int
	Variant     hand.Variant
	Parallelism int
	Logger      *log.Logger
}

func (c *Config) withDefaults() (Config, error) {
	cfg := *c
	if cfg.Rounds <= 0 {
		return cfg, errors.New("rounds must be positive")
	}
	if cfg.Seats == 0 {
		cfg.Seats = 4
	}
	if cfg.Seats < MinSeats || cfg.Seats > MaxSeats {
		return cfg, fmt.Errorf("seats must be between %d and %d", MinSeats, MaxSeats)
	}
	if cfg.BootAmount <= 0 {
		cfg.BootAmount = defaultBoot
	}
	if cfg.Variant == "" {
		cfg.Variant = hand.VariantClassic
	}
	if !cfg.Variant.Valid() {
		return cfg, fmt.Errorf("unknown variant %q", cfg.Variant)
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return cfg, nil
}

// Stats aggregates a finished batch.
type Stats struct {
	Rounds            int
	Stalled           int
	WinsByPlayer      map[string]int
	WinsByPersonality map[ai.Personality]int
	Categories        map[hand.Category]int
	TotalPot          int
	MaxPot            int
	ChipErrors        int
}

// AveragePot is the mean final pot across completed rounds.
func (s *Stats) AveragePot() float64 {
	completed := s.Rounds - s.Stalled
	if completed == 0 {
		return 0
	}
	return float64(s.TotalPot) / float64(completed)
}

// String renders a human-readable summary.
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rounds: %d (stalled: %d)\n", s.Rounds, s.Stalled)
	fmt.Fprintf(&b, "average pot: %.1f (max %d)\n", s.AveragePot(), s.MaxPot)

	names := make([]string, 0, len(s.WinsByPlayer))
	for name := range s.WinsByPlayer {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "wins %-12s %d\n", name, s.WinsByPlayer[name])
	}

	for cat := hand.Trail; cat >= hand.HighCard; cat-- {
		if n, ok := s.Categories[cat]; ok {
			fmt.Fprintf(&b, "dealt %-14s %d\n", cat.String(), n)
		}
	}

	if s.ChipErrors > 0 {
		fmt.Fprintf(&b, "CHIP CONSERVATION ERRORS: %d\n", s.ChipErrors)
	}
	return b.String()
}

// tableSeat pairs a roster identity with its personality for win
// attribution.
type tableSeat struct {
	seat        game.Seat
	personality ai.Personality
}

func buildTable(n int) []tableSeat {
	table := make([]tableSeat, n)
	for i := 0; i < n; i++ {
		opp := ai.Roster[i%len(ai.Roster)]
		name := opp.Name
		userID := opp.UserID
		if i >= len(ai.Roster) {
			name = fmt.Sprintf("%s %d", opp.Name, i/len(ai.Roster)+1)
			userID = fmt.Sprintf("%s-%d", opp.UserID, i/len(ai.Roster)+1)
		}
		table[i] = tableSeat{
			seat:        game.Seat{UserID: userID, Name: name, Chips: defaultChips},
			personality: opp.Personality,
		}
	}
	return table
}

// Run plays the configured batch and returns aggregate stats. Rounds
// are independent: every round starts from fresh stacks, so results
// depend only on the base seed.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	table := buildTable(cfg.Seats)
	stats := &Stats{
		WinsByPlayer:      make(map[string]int),
		WinsByPersonality: make(map[ai.Personality]int),
		Categories:        make(map[hand.Category]int),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for round := 0; round < cfg.Rounds; round++ {
		round := round
		g.Go(func() error {
			return playRound(ctx, cfg, table, round, stats, &mu)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Rounds = cfg.Rounds
	return stats, nil
}

func playRound(ctx context.Context, cfg Config, table []tableSeat, round int, stats *Stats, mu *sync.Mutex) error {
	seed := cfg.Seed + int64(round)*seedStride

	seats := make([]game.Seat, len(table))
	for i, ts := range table {
		seats[i] = ts.seat
	}

	state, err := game.Initialize(randutil.New(seed), fmt.Sprintf("sim-%d", round), seats, cfg.BootAmount, cfg.Variant)
	if err != nil {
		return err
	}
	startingChips := state.TotalChips()

	dealt := make(map[hand.Category]int)
	for i := range state.Session.Players {
		result, err := hand.Evaluate(state.Session.Players[i].Cards)
		if err != nil {
			return err
		}
		dealt[result.Category]++
	}

	agents := make(map[string]scheduler.Agent, len(table))
	personalityOf := make(map[string]ai.Personality, len(table))
	nameOf := make(map[string]string, len(table))
	for i, p := range state.Session.Players {
		agents[p.ID] = scheduler.NewAIAgent(
			randutil.New(seed+int64(i)+1), table[i].personality, quartz.NewReal(), 0)
		personalityOf[p.ID] = table[i].personality
		nameOf[p.ID] = p.Name
	}

	runner := scheduler.New(quartz.NewReal(), cfg.Logger, scheduler.Options{
		MaxActions: roundActionBudget,
	})

	final, err := runner.Run(ctx, state, agents)
	stalled := errors.Is(err, scheduler.ErrRoundStalled)
	if err != nil && !stalled {
		return fmt.Errorf("round %d: %w", round, err)
	}

	mu.Lock()
	defer mu.Unlock()

	for cat, n := range dealt {
		stats.Categories[cat] += n
	}
	if stalled {
		stats.Stalled++
		return nil
	}

	for _, id := range final.Winners {
		stats.WinsByPlayer[nameOf[id]]++
		stats.WinsByPersonality[personalityOf[id]]++
	}
	stats.TotalPot += final.Session.Pot
	if final.Session.Pot > stats.MaxPot {
		stats.MaxPot = final.Session.Pot
	}
	if final.TotalChips() != startingChips {
		stats.ChipErrors++
		cfg.Logger.Error("chip conservation violated",
			"round", round, "before", startingChips, "after", final.TotalChips())
	}
	return nil
}
