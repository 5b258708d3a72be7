package internal

import (
	"fmt"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

// EvaluationError reports a malformed position reaching the evaluator. It
// indicates an upstream invariant violation; the decision fails rather than
// guessing a value.
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return "evaluation: " + e.Reason
}

// Evaluate scores a position for the given partnership axis. The sign
// convention is fixed for the whole search tree: positive favors axis,
// negative favors its opponents, regardless of which seat is on move.
func Evaluate(ps *domain.PlayState, axis domain.Side, w EvalWeights) (float64, error) {
	if err := validatePosition(ps); err != nil {
		return 0, err
	}
	own := sideValue(ps, axis, w)
	opp := sideValue(ps, axis.Opponent(), w)
	return own - opp, nil
}

func validatePosition(ps *domain.PlayState) error {
	if ps == nil {
		return &EvaluationError{Reason: "nil state"}
	}
	trickLen := 0
	if ps.CurrentTrick != nil {
		trickLen = ps.CurrentTrick.Len()
	}
	if trickLen > domain.SeatCount {
		return &EvaluationError{Reason: fmt.Sprintf("current trick holds %d cards", trickLen)}
	}
	// Mid-trick, a seat that has already played holds one card fewer; the
	// adjusted sizes must agree across all four seats.
	var adjusted [domain.SeatCount]int
	for _, s := range domain.Seats {
		adjusted[s] = len(ps.Hands[s])
	}
	if ps.CurrentTrick != nil {
		for _, p := range ps.CurrentTrick.Plays {
			adjusted[p.Seat]++
		}
	}
	for _, s := range domain.Seats[1:] {
		if adjusted[s] != adjusted[domain.North] {
			return &EvaluationError{Reason: fmt.Sprintf("uneven hands: seat %s adjusted size %d vs %d", s, adjusted[s], adjusted[domain.North])}
		}
	}
	tricks := 0
	for _, s := range domain.Seats {
		tricks += ps.TricksWon[s]
	}
	if tricks != len(ps.History) {
		return &EvaluationError{Reason: fmt.Sprintf("%d tricks won vs %d resolved", tricks, len(ps.History))}
	}
	return nil
}

// sideValue sums the weighted components for one partnership.
func sideValue(ps *domain.PlayState, side domain.Side, w EvalWeights) float64 {
	value := float64(ps.SideTricks(side)) * w.TrickWon

	trump, hasTrump := ps.Contract.Strain.TrumpSuit()

	for _, suit := range domain.Suits {
		remaining := remainingBySuit(ps, suit)
		if len(remaining) == 0 {
			continue
		}

		winners := topRunLength(ps, remaining, side)
		if hasTrump && suit == trump {
			value += float64(winners) * w.MasterTrump
		} else {
			value += float64(winners) * w.SureWinner
		}

		sideLen := suitLength(ps, suit, side)
		oppLen := len(remaining) - sideLen

		if diff := sideLen - oppLen; diff > 0 {
			value += float64(diff) * w.LengthPotential
		}

		// Honors under threat: the opponents own the top of the suit and
		// outnumber us in it, so our high cards may be finessed or dropped.
		if oppLen > sideLen && domain.SideOf(owner(ps, remaining[0])) != side {
			for _, c := range remaining {
				if c.Rank.IsHonor() && domain.SideOf(owner(ps, c)) == side {
					value -= w.ExposurePenalty
				}
			}
		}
	}

	if hasTrump {
		value += ruffPotential(ps, side, trump) * w.RuffPotential
	}

	return value
}

// remainingBySuit returns the unplayed cards of the suit across all four
// hands, highest first.
func remainingBySuit(ps *domain.PlayState, suit domain.Suit) domain.Cards {
	var out domain.Cards
	for _, s := range domain.Seats {
		out = append(out, ps.Hands[s].BySuit(suit)...)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Rank > out[i].Rank {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// topRunLength counts how many of the suit's top remaining cards the side
// holds consecutively: those cards cannot be beaten in the suit no matter
// the order of play.
func topRunLength(ps *domain.PlayState, remaining domain.Cards, side domain.Side) int {
	run := 0
	for _, c := range remaining {
		if domain.SideOf(owner(ps, c)) != side {
			break
		}
		run++
	}
	return run
}

func owner(ps *domain.PlayState, c domain.Card) domain.Seat {
	for _, s := range domain.Seats {
		if ps.Hands[s].Contains(c) {
			return s
		}
	}
	return domain.North
}

func suitLength(ps *domain.PlayState, suit domain.Suit, side domain.Side) int {
	n := 0
	for _, s := range domain.Seats {
		if domain.SideOf(s) == side {
			n += ps.Hands[s].CountSuit(suit)
		}
	}
	return n
}

// ruffPotential rewards seats that are short in a side suit while still
// holding trumps: each missing card below a doubleton is a ruffing chance.
func ruffPotential(ps *domain.PlayState, side domain.Side, trump domain.Suit) float64 {
	potential := 0.0
	for _, s := range domain.Seats {
		if domain.SideOf(s) != side || ps.Hands[s].CountSuit(trump) == 0 {
			continue
		}
		for _, suit := range domain.Suits {
			if suit == trump {
				continue
			}
			if l := ps.Hands[s].CountSuit(suit); l < 2 && stillHeldByOthers(ps, suit, s) {
				potential += float64(2 - l)
			}
		}
	}
	return potential
}

// stillHeldByOthers reports whether any other hand still holds the suit, so
// a ruff could actually score.
func stillHeldByOthers(ps *domain.PlayState, suit domain.Suit, except domain.Seat) bool {
	for _, s := range domain.Seats {
		if s != except && ps.Hands[s].HasSuit(suit) {
			return true
		}
	}
	return false
}
