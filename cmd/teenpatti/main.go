package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/desiplay/teenpatti/internal/ai"
	"github.com/desiplay/teenpatti/internal/config"
	"github.com/desiplay/teenpatti/internal/display"
	"github.com/desiplay/teenpatti/internal/game"
	"github.com/desiplay/teenpatti/internal/hand"
	"github.com/desiplay/teenpatti/internal/randutil"
	"github.com/desiplay/teenpatti/internal/scheduler"
)

var CLI struct {
	Config   string `short:"c" default:"teenpatti.hcl" help:"Path to HCL configuration file"`
	Table    string `short:"t" default:"main" help:"Table to sit at"`
	Name     string `short:"n" default:"You" help:"Your display name"`
	Variant  string `help:"Variant override: classic, joker, muflis or ak47"`
	Seed     int64  `help:"Shuffle seed (0 uses the clock)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	Rounds   int    `help:"Stop after this many rounds (0 plays until you quit)"`
}

// humanAgent reads the human seat's moves from stdin.
type humanAgent struct {
	renderer *display.Renderer
	reader   *bufio.Reader
	playerID string
}

func (h *humanAgent) Act(state *game.State, legal []game.ActionType) (game.Action, error) {
	h.renderer.ShowTable(state, h.playerID)

	for {
		h.renderer.ShowPrompt(state, legal)
		line, err := h.reader.ReadString('\n')
		if err != nil {
			// Stdin closed; leave the table gracefully.
			return game.Action{Type: game.Pack}, nil
		}
		if action, ok := display.ParseAction(line, legal); ok {
			return game.Action{Type: action}, nil
		}
		fmt.Println("That's not a legal move right now.")
	}
}

func main() {
	kctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		kctx.Exit(1)
	}
	if CLI.LogLevel != "" {
		cfg.Game.LogLevel = CLI.LogLevel
	}
	if CLI.Seed != 0 {
		cfg.Game.Seed = CLI.Seed
	}

	table := cfg.TableByName(CLI.Table)
	if table == nil {
		fmt.Printf("No table named %q in %s\n", CLI.Table, CLI.Config)
		kctx.Exit(1)
	}
	if CLI.Variant != "" {
		table.Variant = CLI.Variant
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		kctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	switch cfg.Game.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	var rng *rand.Rand
	if cfg.Game.Seed != 0 {
		rng = randutil.New(cfg.Game.Seed)
	} else {
		rng = randutil.NewFromTime()
	}

	bots := cfg.BotsForTable(table.Name)
	for len(bots)+1 < 3 {
		stock := ai.Roster[len(bots)%len(ai.Roster)]
		bots = append(bots, config.BotConfig{
			Name:        stock.Name,
			Personality: string(stock.Personality),
			BuyIn:       table.BuyIn,
		})
	}
	if len(bots) > table.MaxPlayers-1 {
		bots = bots[:table.MaxPlayers-1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := display.New(os.Stdout)
	reader := bufio.NewReader(os.Stdin)

	chips := make(map[string]int, len(bots)+1)
	chips[CLI.Name] = table.BuyIn
	for _, bot := range bots {
		chips[bot.Name] = bot.BuyIn
	}

	played := 0
	for {
		// Busted bots re-buy between rounds so the table stays full.
		for _, bot := range bots {
			if chips[bot.Name] < table.BootAmount {
				chips[bot.Name] = bot.BuyIn
			}
		}

		seats := make([]game.Seat, 0, len(bots)+1)
		seats = append(seats, game.Seat{UserID: "human", Name: CLI.Name, Chips: chips[CLI.Name]})
		for i, bot := range bots {
			seats = append(seats, game.Seat{
				UserID: fmt.Sprintf("bot-%d", i),
				Name:   bot.Name,
				Chips:  chips[bot.Name],
			})
		}

		state, err := game.Initialize(rng, table.Name, seats, table.BootAmount, hand.Variant(table.Variant))
		if err != nil {
			logger.Error("Failed to start round", "error", err)
			kctx.Exit(1)
		}
		humanID := state.Session.Players[0].ID

		bus := game.NewEventBus()
		bus.Subscribe(func(e game.GameEvent) {
			action, ok := e.(game.ActionEvent)
			if !ok || action.PlayerID == humanID {
				return
			}
			renderer.ShowTalk(ai.TableTalk(rng, action.PlayerName, action.Action, false))
		})

		agents := map[string]scheduler.Agent{
			humanID: &humanAgent{renderer: renderer, reader: reader, playerID: humanID},
		}
		for i, bot := range bots {
			p := state.Session.Players[i+1]
			agents[p.ID] = scheduler.NewAIAgent(
				randutil.New(rng.Int63()), ai.Personality(bot.Personality), quartz.NewReal(), 1.0)
		}

		runner := scheduler.New(quartz.NewReal(), logger.WithPrefix("round"), scheduler.Options{
			TurnTimeout: time.Duration(cfg.Game.TurnTimeout) * time.Second,
			Bus:         bus,
		})

		renderer.ShowRoundHeader(state)
		final, err := runner.Run(ctx, state, agents)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println("\nThanks for playing!")
				return
			}
			logger.Error("Round failed", "error", err)
			kctx.Exit(1)
		}

		renderer.ShowResult(final)

		payouts := make(map[string]int, len(final.Winners))
		for _, payout := range game.DistributePot(final) {
			payouts[payout.PlayerID] = payout.Amount
		}
		for i := range final.Session.Players {
			p := &final.Session.Players[i]
			chips[p.Name] = p.Chips + payouts[p.ID]
		}

		played++
		if CLI.Rounds > 0 && played >= CLI.Rounds {
			return
		}
		if chips[CLI.Name] < table.BootAmount {
			fmt.Println("You're out of chips. Better luck next time!")
			return
		}

		fmt.Print("\nPlay another round? [y/n] ")
		line, err := reader.ReadString('\n')
		if err != nil || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
			fmt.Println("Thanks for playing!")
			return
		}
	}
}
