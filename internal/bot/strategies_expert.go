package bot

import (
	"context"
	"time"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
	botinternal "github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/internal"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/solver"
)

// ExpertBrain delegates to the exact double-dummy solver and degrades to
// the heuristic search when the solver is unavailable, too slow, or faults
// on a position. A solver problem never surfaces as a failed decision.
type ExpertBrain struct {
	cfg     Config
	adapter *solver.Adapter
}

func newExpertBrain(cfg Config) *ExpertBrain {
	dd := &solver.DoubleDummy{MaxCards: cfg.SolverMaxCards}
	capability := solver.NewCapability(dd, cfg.Logger, cfg.DisableSolver)
	search := botinternal.NewSearcher(cfg.Tuning)
	return &ExpertBrain{
		cfg: cfg,
		adapter: &solver.Adapter{
			Solver:     dd,
			Capability: capability,
			Timeout:    cfg.SolverTimeout,
			Logger:     cfg.Logger,
			Fallback: func(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, error) {
				return search.ChooseCard(ctx, ps, seat, cfg.FallbackPlies)
			},
		},
	}
}

// SolverAvailable answers the capability query without re-probing.
func (b *ExpertBrain) SolverAvailable() bool {
	return b.adapter.Capability.Available()
}

// ChooseCard routes through the adapter and records which path decided.
func (b *ExpertBrain) ChooseCard(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, error) {
	start := time.Now()
	card, exact, err := b.adapter.Choose(ctx, ps, seat)
	if err != nil {
		return domain.Card{}, err
	}
	kind := DecisionFallback
	if exact {
		kind = DecisionSolver
	}
	b.cfg.Stats.Record(kind, time.Since(start))
	return card, nil
}
