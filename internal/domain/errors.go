package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotYourTurn reports a play attempted out of turn.
	ErrNotYourTurn = errors.New("not this seat's turn")
	// ErrCardNotHeld reports a play of a card the seat does not hold.
	ErrCardNotHeld = errors.New("card not in hand")
	// ErrPlayComplete reports a play attempted after the 13th trick.
	ErrPlayComplete = errors.New("play already complete")
)

// InvalidTransitionError reports an attempted phase change not present in
// the transition table. It indicates a caller bug and is never recovered
// by coercing the state.
type InvalidTransitionError struct {
	From Phase
	To   Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

// LegalityError reports an attempted play that violates the follow-suit
// rule. The play is rejected as-is, never substituted with a nearby legal
// card.
type LegalityError struct {
	Seat Seat
	Card Card
	Led  Suit
}

func (e *LegalityError) Error() string {
	return fmt.Sprintf("seat %s cannot play %s: must follow %s", e.Seat, e.Card, e.Led)
}
