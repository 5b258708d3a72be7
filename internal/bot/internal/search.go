// Package internal implements the decision core shared by the bot
// strategies: a depth-limited minimax search with alpha-beta pruning over
// play-state snapshots, the heuristic evaluator it cuts off into, and the
// context-sensitive move ordering.
package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

// Infinity bounds the alpha-beta window.
const Infinity = 10000000.0

// PliesPerTrick is the natural unit of search depth: one card per seat.
const PliesPerTrick = domain.SeatCount

// ErrNoLegalPlay reports a decision request for a seat with no cards.
var ErrNoLegalPlay = errors.New("no legal play available")

// Searcher runs minimax with alpha-beta pruning, iteratively deepened one
// trick at a time so a cancelled context still yields the best move found
// so far.
type Searcher struct {
	Tuning Tuning
}

// NewSearcher returns a Searcher with the given tuning.
func NewSearcher(tuning Tuning) *Searcher {
	return &Searcher{Tuning: tuning}
}

type scoredCard struct {
	card  domain.Card
	value float64
}

// ChooseCard picks a card for the seat under a ply budget. The maximizing
// side for the entire tree is the seat's partnership: defenders and
// declarer alike maximize their own side's evaluation and minimize the
// opponents'.
func (s *Searcher) ChooseCard(ctx context.Context, ps *domain.PlayState, seat domain.Seat, maxPlies int) (domain.Card, error) {
	snapshot := ps.Clone()
	legal := snapshot.LegalPlays(seat)
	if len(legal) == 0 {
		return domain.Card{}, ErrNoLegalPlay
	}
	ordered := OrderMoves(snapshot, seat, legal)
	if len(ordered) == 1 {
		return ordered[0], nil
	}

	axis := domain.SideOf(seat)
	// Ordering is the fallback before any iteration completes: a timeout on
	// the very first pass still returns a sanely ordered card.
	best := ordered[0]

	for _, depth := range deepeningSchedule(maxPlies) {
		scored, err := s.searchRoot(ctx, snapshot, seat, axis, ordered, depth)
		if err != nil {
			// An expired budget keeps the best move found so far. Anything
			// else is an invariant violation; the decision fails rather than
			// guessing a card.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return domain.Card{}, err
		}
		best = s.selectRoot(snapshot, seat, scored)
	}
	return best, nil
}

// deepeningSchedule yields trick-aligned depths up to the ply budget.
func deepeningSchedule(maxPlies int) []int {
	if maxPlies <= PliesPerTrick {
		return []int{maxPlies}
	}
	var out []int
	for d := PliesPerTrick; d < maxPlies; d += PliesPerTrick {
		out = append(out, d)
	}
	return append(out, maxPlies)
}

// searchRoot evaluates every root move with a full window. Pruning below
// the root stays intact, but root values must be exact: the discard
// tie-break compares them against a tolerance band, and a fail-low bound
// would poison that comparison.
func (s *Searcher) searchRoot(ctx context.Context, ps *domain.PlayState, seat domain.Seat, axis domain.Side, ordered domain.Cards, depth int) ([]scoredCard, error) {
	scored := make([]scoredCard, 0, len(ordered))
	for _, card := range ordered {
		child := ps.Clone()
		if _, err := child.Play(seat, card); err != nil {
			return nil, fmt.Errorf("search simulated illegal play %v: %w", card, err)
		}
		value, err := s.alphabeta(ctx, child, axis, depth-1, -Infinity, Infinity)
		if err != nil {
			return nil, err
		}
		scored = append(scored, scoredCard{card: card, value: value})
	}
	return scored, nil
}

// selectRoot picks the move with the best value. Discard candidates whose
// values sit within the configured tolerance of the best are treated as
// tied and resolved by the discard policy, so an honor examined first can
// never win a tie against a spot card.
func (s *Searcher) selectRoot(ps *domain.PlayState, seat domain.Seat, scored []scoredCard) domain.Card {
	best := scored[0]
	for _, sc := range scored[1:] {
		if sc.value > best.value {
			best = sc
		}
	}

	if IsDiscardContext(ps, seat) {
		var tied domain.Cards
		for _, sc := range scored {
			if best.value-sc.value <= s.Tuning.DiscardTolerance {
				tied = append(tied, sc.card)
			}
		}
		if len(tied) > 1 {
			return PreferredDiscard(ps.Hands[seat], tied)
		}
	}
	return best.card
}

// alphabeta walks the tree. The maximizing/minimizing role is derived from
// the partnership of the seat on move against the fixed axis, never from
// ply parity.
func (s *Searcher) alphabeta(ctx context.Context, ps *domain.PlayState, axis domain.Side, depth int, alpha, beta float64) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	if terminal(ps) {
		return Evaluate(ps, axis, s.Tuning.Weights)
	}
	if depth <= 0 {
		// A budget expiring mid-trick is not a well-defined evaluation
		// point; finish the trick deterministically first.
		if err := s.playOutTrick(ps); err != nil {
			return 0, err
		}
		return Evaluate(ps, axis, s.Tuning.Weights)
	}

	seat := ps.NextSeat
	maximizing := domain.SideOf(seat) == axis
	ordered := OrderMoves(ps, seat, ps.LegalPlays(seat))

	if maximizing {
		value := -Infinity
		for _, card := range ordered {
			child := ps.Clone()
			if _, err := child.Play(seat, card); err != nil {
				return 0, fmt.Errorf("search simulated illegal play %v: %w", card, err)
			}
			v, err := s.alphabeta(ctx, child, axis, depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			if v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break // beta cut-off
			}
		}
		return value, nil
	}

	value := Infinity
	for _, card := range ordered {
		child := ps.Clone()
		if _, err := child.Play(seat, card); err != nil {
			return 0, fmt.Errorf("search simulated illegal play %v: %w", card, err)
		}
		v, err := s.alphabeta(ctx, child, axis, depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			break // alpha cut-off
		}
	}
	return value, nil
}

// terminal reports whether no further play is possible: all thirteen tricks
// resolved, or every hand exhausted in a partial position.
func terminal(ps *domain.PlayState) bool {
	return ps.Complete() || ps.Hands.TotalCards() == 0
}

// playOutTrick finishes a partially played trick with the cheap
// deterministic heuristic: cover with the cheapest winner, otherwise shed
// the safest low card.
func (s *Searcher) playOutTrick(ps *domain.PlayState) error {
	for ps.CurrentTrick != nil && ps.CurrentTrick.Len() > 0 && !ps.CurrentTrick.Complete() {
		seat := ps.NextSeat
		card := CheapPlay(ps, seat)
		if _, err := ps.Play(seat, card); err != nil {
			return fmt.Errorf("trick playout: %w", err)
		}
	}
	return nil
}

// CheapPlay is the fixed low-cost heuristic used to complete tricks at the
// search horizon: the cheapest card that wins the trick, else the safest
// discard. It is deterministic by construction.
func CheapPlay(ps *domain.PlayState, seat domain.Seat) domain.Card {
	legal := ps.LegalPlays(seat)
	trick := ps.CurrentTrick
	if trick == nil || trick.Len() == 0 {
		return OrderMoves(ps, seat, legal)[0]
	}

	led, _ := trick.LedSuit()
	winning := trick.WinningPlay(ps.Contract.Strain)
	var winners domain.Cards
	for _, c := range legal {
		if domain.CardBeats(c, winning.Card, led, ps.Contract.Strain) {
			winners = append(winners, c)
		}
	}
	if len(winners) > 0 {
		sortByRank(winners, true)
		return winners[0]
	}
	return PreferredDiscard(ps.Hands[seat], legal)
}
