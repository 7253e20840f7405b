package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig is the data-dir JSON configuration for Tongits matches.
type GameConfig struct {
	// AnteChips is collected from every seat into the side pot at round
	// start.
	AnteChips int64 `json:"ante_chips"`
	// TurnDurationSeconds bounds how long a human seat may sit on a turn.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotMinDelaySeconds / BotMaxDelaySeconds pace bot actions.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds is how long a lone human waits before the
	// lobby fills with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil if unloaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetAnte returns the configured per-seat ante, defaulting to 2 chips.
func GetAnte() int64 {
	if cfg == nil || cfg.AnteChips <= 0 {
		return 2
	}
	return cfg.AnteChips
}
