// Package config loads the engine configuration from a JSON file at the
// binary edge. The loaded struct is handed to callers explicitly; library
// code never reads it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Weights overrides the evaluation weights. Pointers distinguish "absent"
// from an explicit zero.
type Weights struct {
	TrickWon        *float64 `json:"trick_won"`
	SureWinner      *float64 `json:"sure_winner"`
	MasterTrump     *float64 `json:"master_trump"`
	RuffPotential   *float64 `json:"ruff_potential"`
	LengthPotential *float64 `json:"length_potential"`
	ExposurePenalty *float64 `json:"exposure_penalty"`
}

// GameConfig is the engine configuration surface: difficulty default,
// search depths per tier, solver limits and evaluation tuning.
type GameConfig struct {
	DefaultDifficulty string `json:"default_difficulty"`

	GoodPlies     int `json:"good_plies"`
	SmartPlies    int `json:"smart_plies"`
	FallbackPlies int `json:"fallback_plies"`

	SolverTimeoutSeconds float64 `json:"solver_timeout_seconds"`
	SolverMaxCards       int     `json:"solver_max_cards"`
	DisableSolver        bool    `json:"disable_solver"`

	DiscardTolerance *float64 `json:"discard_tolerance"`
	Weights          *Weights `json:"weights"`
}

// Default returns the configuration used when no file is given.
func Default() GameConfig {
	return GameConfig{
		DefaultDifficulty:    "smart",
		GoodPlies:            4,
		SmartPlies:           8,
		FallbackPlies:        4,
		SolverTimeoutSeconds: 2,
		SolverMaxCards:       24,
	}
}

// Parse decodes a configuration document, filling absent numeric fields
// from the defaults.
func Parse(data []byte) (*GameConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if c.GoodPlies <= 0 || c.SmartPlies <= 0 || c.FallbackPlies <= 0 {
		return nil, fmt.Errorf("ply budgets must be positive")
	}
	if c.SolverMaxCards <= 0 {
		return nil, fmt.Errorf("solver_max_cards must be positive")
	}
	return &c, nil
}

// SolverTimeout converts the configured seconds to a duration.
func (c *GameConfig) SolverTimeout() time.Duration {
	return time.Duration(c.SolverTimeoutSeconds * float64(time.Second))
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the configuration from the given path, once per
// process.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or the defaults when no
// file was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		def := Default()
		return &def
	}
	return cfg
}
