package app

import "github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"

// EventKind identifies emitted play-session events for dispatch to callers.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventPlayStarted    EventKind = "play_started"
	EventCardPlayed     EventKind = "card_played"
	EventDummyRevealed  EventKind = "dummy_revealed"
	EventTrickCompleted EventKind = "trick_completed"
	EventHandScored     EventKind = "hand_scored"
)

// Event is a session event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat // empty means broadcast
}

// HandDealtPayload carries one seat's hand. It is sent only to that seat:
// unlike the dummy's later reveal, a dealt hand is private information.
type HandDealtPayload struct {
	Seat domain.Seat
	Hand domain.Cards
}

type PlayStartedPayload struct {
	SessionID string
	Contract  domain.Contract
	Leader    domain.Seat
}

type CardPlayedPayload struct {
	Seat     domain.Seat
	Card     domain.Card
	NextSeat domain.Seat
}

// DummyRevealedPayload carries the dummy's hand, public from the moment the
// opening lead hits the table.
type DummyRevealedPayload struct {
	Dummy domain.Seat
	Hand  domain.Cards
}

type TrickCompletedPayload struct {
	Winner    domain.Seat
	TricksWon [domain.SeatCount]int
}

type HandScoredPayload struct {
	Score domain.Score
}
