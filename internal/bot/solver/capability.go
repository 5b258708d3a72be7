package solver

import (
	"context"
	"sync"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

const probeTimeout = 250 * time.Millisecond

// Capability answers "is the exact solver usable on this runtime". The
// probe runs exactly once and the answer is cached; per-call re-probing is
// deliberately impossible.
type Capability struct {
	solver   Solver
	logger   runtime.Logger
	disabled bool

	once      sync.Once
	available bool
}

// NewCapability wires a capability around the given solver. Setting
// disabled models a platform where the native solver cannot be loaded.
func NewCapability(s Solver, logger runtime.Logger, disabled bool) *Capability {
	return &Capability{solver: s, logger: logger, disabled: disabled}
}

// Available reports whether the exact solver may be used. The first call
// performs the probe; later calls return the cached answer.
func (c *Capability) Available() bool {
	c.once.Do(c.probe)
	return c.available
}

func (c *Capability) probe() {
	if c.disabled {
		c.logger.Info("double-dummy solver disabled by configuration")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("double-dummy solver crashed during probe: %v", r)
			c.available = false
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	ps := probePosition()
	if _, err := c.solver.SolveTricks(ctx, ps, ps.NextSeat); err != nil {
		c.logger.Warn("double-dummy solver failed probe: %v", err)
		return
	}
	c.available = true
	c.logger.Info("double-dummy solver available")
}

// probePosition is a trivial two-trick ending the probe can solve in
// microseconds.
func probePosition() *domain.PlayState {
	return &domain.PlayState{
		Phase:    domain.PhasePlayInProgress,
		Contract: domain.Contract{Level: 1, Strain: domain.NoTrump, Declarer: domain.South},
		Hands: domain.Deal{
			domain.North: domain.MustCards("AS 2H"),
			domain.East:  domain.MustCards("KS 3H"),
			domain.South: domain.MustCards("QS 4H"),
			domain.West:  domain.MustCards("JS 5H"),
		},
		CurrentTrick:  domain.NewTrick(),
		NextSeat:      domain.West,
		DummyRevealed: true,
	}
}
