// Package config loads table and bot configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/desiplay/teenpatti/internal/ai"
	"github.com/desiplay/teenpatti/internal/hand"
)

// Config is the complete game configuration.
type Config struct {
	Game   GameSettings  `hcl:"game,block"`
	Tables []TableConfig `hcl:"table,block"`
	Bots   []BotConfig   `hcl:"bot,block"`
}

// GameSettings contains top-level settings.
type GameSettings struct {
	LogLevel    string `hcl:"log_level,optional"`
	TurnTimeout int    `hcl:"turn_timeout,optional"` // seconds
	Seed        int64  `hcl:"seed,optional"`         // 0 means time-based
}

// TableConfig defines one table.
type TableConfig struct {
	Name       string `hcl:"name,label"`
	Variant    string `hcl:"variant,optional"`
	BootAmount int    `hcl:"boot_amount"`
	MaxPlayers int    `hcl:"max_players,optional"`
	BuyIn      int    `hcl:"buy_in,optional"`
}

// BotConfig defines one AI seat.
type BotConfig struct {
	Name        string   `hcl:"name,label"`
	Personality string   `hcl:"personality"`
	Tables      []string `hcl:"tables,optional"`
	BuyIn       int      `hcl:"buy_in,optional"`
}

// Default returns the configuration used when no file is present: one
// classic table with the stock opponents.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			LogLevel:    "info",
			TurnTimeout: 30,
		},
		Tables: []TableConfig{
			{
				Name:       "main",
				Variant:    string(hand.VariantClassic),
				BootAmount: 10,
				MaxPlayers: 6,
				BuyIn:      1000,
			},
		},
		Bots: []BotConfig{
			{Name: "Sharma Ji", Personality: string(ai.Conservative), Tables: []string{"main"}, BuyIn: 1000},
			{Name: "Priya", Personality: string(ai.Balanced), Tables: []string{"main"}, BuyIn: 1000},
			{Name: "Bunty", Personality: string(ai.Aggressive), Tables: []string{"main"}, BuyIn: 1000},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults rather than an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Game.LogLevel == "" {
		cfg.Game.LogLevel = "info"
	}
	if cfg.Game.TurnTimeout == 0 {
		cfg.Game.TurnTimeout = 30
	}

	for i := range cfg.Tables {
		if cfg.Tables[i].Variant == "" {
			cfg.Tables[i].Variant = string(hand.VariantClassic)
		}
		if cfg.Tables[i].MaxPlayers == 0 {
			cfg.Tables[i].MaxPlayers = 6
		}
		if cfg.Tables[i].BuyIn == 0 {
			cfg.Tables[i].BuyIn = cfg.Tables[i].BootAmount * 100
		}
	}

	for i := range cfg.Bots {
		if cfg.Bots[i].Personality == "" {
			cfg.Bots[i].Personality = string(ai.Balanced)
		}
		if cfg.Bots[i].BuyIn == 0 {
			cfg.Bots[i].BuyIn = 1000
		}
		if len(cfg.Bots[i].Tables) == 0 {
			for _, table := range cfg.Tables {
				cfg.Bots[i].Tables = append(cfg.Bots[i].Tables, table.Name)
			}
		}
	}

	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	for _, table := range c.Tables {
		if !hand.Variant(table.Variant).Valid() {
			return fmt.Errorf("table %s: unknown variant %q", table.Name, table.Variant)
		}
		if table.BootAmount <= 0 {
			return fmt.Errorf("table %s: boot amount must be positive", table.Name)
		}
		if table.MaxPlayers < 3 || table.MaxPlayers > 6 {
			return fmt.Errorf("table %s: max players must be between 3 and 6", table.Name)
		}
		if table.BuyIn < table.BootAmount*10 {
			return fmt.Errorf("table %s: buy-in must cover at least ten boots", table.Name)
		}
	}

	validPersonalities := map[string]bool{
		string(ai.Conservative): true,
		string(ai.Balanced):     true,
		string(ai.Aggressive):   true,
	}

	for _, bot := range c.Bots {
		if !validPersonalities[bot.Personality] {
			return fmt.Errorf("bot %s: invalid personality %s", bot.Name, bot.Personality)
		}
		if bot.BuyIn <= 0 {
			return fmt.Errorf("bot %s: buy-in must be positive", bot.Name)
		}
	}

	return nil
}

// TableByName returns a table configuration by name, or nil.
func (c *Config) TableByName(name string) *TableConfig {
	for _, table := range c.Tables {
		if table.Name == name {
			return &table
		}
	}
	return nil
}

// BotsForTable returns the bots seated at the named table.
func (c *Config) BotsForTable(tableName string) []BotConfig {
	var bots []BotConfig
	for _, bot := range c.Bots {
		for _, table := range bot.Tables {
			if table == tableName {
				bots = append(bots, bot)
				break
			}
		}
	}
	return bots
}
