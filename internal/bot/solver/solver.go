// Package solver provides the exact double-dummy solver used by the
// highest difficulty tier, behind a probed capability with a transparent
// fallback to the heuristic search.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
	botinternal "github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/internal"
)

var (
	// ErrUnavailable reports that the solver capability is absent on this
	// runtime. Recoverable: callers fall back to heuristic search.
	ErrUnavailable = errors.New("double-dummy solver unavailable")
	// ErrTooManyCards reports a position too large for exact analysis
	// within the solver's budget.
	ErrTooManyCards = errors.New("position too large for exact solver")
)

// FaultError wraps a crash or panic raised by the solver on a specific
// position. Recoverable at the adapter boundary, never propagated further.
type FaultError struct {
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("solver fault: %v", e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// Solver computes, for every legal card of the seat, the exact number of
// tricks the seat's partnership can guarantee assuming all four hands are
// known and everyone plays optimally.
type Solver interface {
	SolveTricks(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (map[domain.Card]int, error)
}

// DefaultMaxCards bounds the positions the exact solver accepts: beyond
// six remaining tricks the full double-dummy tree is not worth walking
// against the adapter's timeout.
const DefaultMaxCards = 24

// DoubleDummy is the exact perfect-information trick counter: full-depth
// minimax with alpha-beta over integral trick counts.
type DoubleDummy struct {
	// MaxCards refuses positions with more unplayed cards than this;
	// zero means DefaultMaxCards.
	MaxCards int
}

func (dd *DoubleDummy) maxCards() int {
	if dd.MaxCards > 0 {
		return dd.MaxCards
	}
	return DefaultMaxCards
}

// SolveTricks returns the guaranteed final trick count for the seat's side
// after each legal card.
func (dd *DoubleDummy) SolveTricks(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (map[domain.Card]int, error) {
	if ps.Hands.TotalCards() > dd.maxCards() {
		return nil, ErrTooManyCards
	}
	axis := domain.SideOf(seat)
	legal := ps.LegalPlays(seat)
	if len(legal) == 0 {
		return nil, fmt.Errorf("seat %s has no legal play", seat)
	}

	out := make(map[domain.Card]int, len(legal))
	for _, card := range legal {
		child := ps.Clone()
		if _, err := child.Play(seat, card); err != nil {
			return nil, fmt.Errorf("solver simulated illegal play %v: %w", card, err)
		}
		n, err := dd.tricks(ctx, child, axis, 0, 14)
		if err != nil {
			return nil, err
		}
		out[card] = n
	}
	return out, nil
}

// tricks is exact minimax over the remaining cards. Maximizing alternates
// by partnership against the fixed axis, exactly as in the heuristic
// search.
func (dd *DoubleDummy) tricks(ctx context.Context, ps *domain.PlayState, axis domain.Side, alpha, beta int) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	if ps.Complete() || ps.Hands.TotalCards() == 0 {
		return ps.SideTricks(axis), nil
	}

	seat := ps.NextSeat
	maximizing := domain.SideOf(seat) == axis
	ordered := botinternal.OrderMoves(ps, seat, ps.LegalPlays(seat))

	if maximizing {
		best := -1
		for _, card := range ordered {
			child := ps.Clone()
			if _, err := child.Play(seat, card); err != nil {
				return 0, fmt.Errorf("solver simulated illegal play %v: %w", card, err)
			}
			n, err := dd.tricks(ctx, child, axis, alpha, beta)
			if err != nil {
				return 0, err
			}
			if n > best {
				best = n
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best, nil
	}

	best := 14
	for _, card := range ordered {
		child := ps.Clone()
		if _, err := child.Play(seat, card); err != nil {
			return 0, fmt.Errorf("solver simulated illegal play %v: %w", card, err)
		}
		n, err := dd.tricks(ctx, child, axis, alpha, beta)
		if err != nil {
			return 0, err
		}
		if n < best {
			best = n
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, nil
}
