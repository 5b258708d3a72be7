package bot

import (
	"context"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
	botinternal "github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/internal"
)

// Level selects the AI difficulty tier.
type Level int

const (
	// LevelGood runs a shallow heuristic search.
	LevelGood Level = iota + 1
	// LevelSmart runs a deeper heuristic search.
	LevelSmart
	// LevelExpert delegates to the exact double-dummy solver with a
	// heuristic fallback.
	LevelExpert
)

func (l Level) String() string {
	switch l {
	case LevelGood:
		return "good"
	case LevelSmart:
		return "smart"
	case LevelExpert:
		return "expert"
	}
	return "unknown"
}

// Brain is the interface all bot strategies implement: one decision entry
// point mapping a position and a seat to a card.
type Brain interface {
	ChooseCard(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, error)
}

// Config carries everything a strategy needs at construction time. It is
// passed explicitly; there is no package-level mutable configuration.
type Config struct {
	Logger runtime.Logger
	Tuning botinternal.Tuning

	// Ply budgets per heuristic tier. FallbackPlies bounds the search the
	// expert tier degrades to when the solver cannot answer.
	GoodPlies     int
	SmartPlies    int
	FallbackPlies int

	// SolverTimeout is the hard wall-clock bound on one exact-solver
	// call; SolverMaxCards bounds the positions handed to it at all.
	SolverTimeout  time.Duration
	SolverMaxCards int
	// DisableSolver models a runtime without the solver; every expert
	// decision then uses the fallback.
	DisableSolver bool

	Stats *Stats
}

// DefaultConfig returns the standard tier configuration.
func DefaultConfig(logger runtime.Logger) Config {
	return Config{
		Logger:         logger,
		Tuning:         DefaultTuning,
		GoodPlies:      4,
		SmartPlies:     8,
		FallbackPlies:  4,
		SolverTimeout:  2 * time.Second,
		SolverMaxCards: 24,
		Stats:          NewStats(),
	}
}
