package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
	botinternal "github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/internal"
)

// FallbackFunc is the heuristic decision the adapter degrades to when the
// exact solver cannot answer.
type FallbackFunc func(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, error)

// Adapter routes a decision to the exact solver when it is available and
// answers in time, and otherwise to the heuristic fallback. Solver faults
// stop here: they are logged and converted into fallback decisions, never
// surfaced as failures.
type Adapter struct {
	Solver     Solver
	Capability *Capability
	Fallback   FallbackFunc
	// Timeout is the hard limit on one solver call. The solver does not
	// obey a ply budget, so it gets a wall-clock bound of its own.
	Timeout time.Duration
	Logger  runtime.Logger
}

// Choose returns the chosen card and whether the exact solver produced it.
func (a *Adapter) Choose(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, bool, error) {
	if !a.Capability.Available() {
		card, err := a.Fallback(ctx, ps, seat)
		return card, false, err
	}

	solveCtx := ctx
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	counts, err := a.solveSafely(solveCtx, ps.Clone(), seat)
	if err != nil {
		a.Logger.Warn("exact solver declined position, using heuristic fallback: %v", err)
		card, ferr := a.Fallback(ctx, ps, seat)
		return card, false, ferr
	}

	return a.selectCard(ps, seat, counts), true, nil
}

// solveSafely invokes the solver and contains any panic as a FaultError.
func (a *Adapter) solveSafely(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (counts map[domain.Card]int, err error) {
	defer func() {
		if r := recover(); r != nil {
			counts = nil
			err = &FaultError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return a.Solver.SolveTricks(ctx, ps, seat)
}

// selectCard picks the card with the best guaranteed trick count. An exact
// tie does not exempt the engine from the discard policy: among tied
// discards the lowest card of the weakest suit is played, never an honor.
func (a *Adapter) selectCard(ps *domain.PlayState, seat domain.Seat, counts map[domain.Card]int) domain.Card {
	best := -1
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	var tied domain.Cards
	for c, n := range counts {
		if n == best {
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	if botinternal.IsDiscardContext(ps, seat) {
		return botinternal.PreferredDiscard(ps.Hands[seat], tied)
	}
	// Equal trick counts otherwise: take the move the ordering heuristic
	// ranks best, which is deterministic.
	return botinternal.OrderMoves(ps, seat, tied)[0]
}
