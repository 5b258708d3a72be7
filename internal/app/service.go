// Package app contains the play-session use-cases operating on domain
// state: starting a deal, applying cards, and driving AI seats.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/bot"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

var (
	ErrNoAgentForSeat  = errors.New("no agent bound to seat")
	ErrSessionComplete = errors.New("session already complete")
)

// Session is one deal being played out: a stable identifier plus the
// authoritative play state.
type Session struct {
	ID    string
	State *domain.PlayState
}

// Service contains the play use-cases.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// NewSession starts play for a finalized contract over a full deal. The
// state machine is advanced to the opening lead; the dummy stays hidden.
func (s *Service) NewSession(contract domain.Contract, deal domain.Deal, vulnerable bool) (*Session, []Event, error) {
	state, err := domain.NewPlayState(contract, deal, vulnerable)
	if err != nil {
		return nil, nil, err
	}
	if err := state.Begin(); err != nil {
		return nil, nil, err
	}

	sess := &Session{ID: uuid.NewString(), State: state}
	events := make([]Event, 0, domain.SeatCount+1)
	for _, seat := range domain.Seats {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Seat: seat,
				Hand: state.Hands[seat].Clone(),
			},
			Recipients: []domain.Seat{seat},
		})
	}
	events = append(events, Event{
		Kind: EventPlayStarted,
		Payload: PlayStartedPayload{
			SessionID: sess.ID,
			Contract:  contract,
			Leader:    state.NextSeat,
		},
	})
	return sess, events, nil
}

// DealSession deals four random hands and starts play on them.
func (s *Service) DealSession(contract domain.Contract, vulnerable bool) (*Session, []Event, error) {
	return s.NewSession(contract, domain.DealHands(s.rng), vulnerable)
}

// Play applies one card through the state machine and emits the resulting
// events in order: the card itself, the dummy reveal on the opening lead,
// trick completion, and the final score once the 13th trick resolves.
func (s *Service) Play(sess *Session, seat domain.Seat, card domain.Card) ([]Event, error) {
	result, err := sess.State.Play(seat, card)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:     seat,
			Card:     card,
			NextSeat: sess.State.NextSeat,
		},
	}}

	if result.DummyRevealed {
		dummy := sess.State.Contract.Dummy()
		events = append(events, Event{
			Kind: EventDummyRevealed,
			Payload: DummyRevealedPayload{
				Dummy: dummy,
				Hand:  sess.State.Hands[dummy].Clone(),
			},
		})
	}

	if result.TrickComplete {
		events = append(events, Event{
			Kind: EventTrickCompleted,
			Payload: TrickCompletedPayload{
				Winner:    result.TrickWinner,
				TricksWon: result.TricksWon,
			},
		})
	}

	if result.Terminal {
		scored, err := s.score(sess)
		if err != nil {
			return nil, err
		}
		events = append(events, scored)
	}
	return events, nil
}

// score walks the state through the scoring phases and produces the event.
func (s *Service) score(sess *Session) (Event, error) {
	if err := sess.State.Transition(domain.PhaseScoring); err != nil {
		return Event{}, err
	}
	score := domain.ScoreContract(sess.State.Contract, sess.State.DeclarerTricks(), sess.State.Vulnerable)
	if err := sess.State.Transition(domain.PhaseRoundComplete); err != nil {
		return Event{}, err
	}
	return Event{Kind: EventHandScored, Payload: HandScoredPayload{Score: score}}, nil
}

// AutoPlay drives every seat with its bound agent until the deal is scored,
// returning all events in play order.
func (s *Service) AutoPlay(ctx context.Context, sess *Session, agents map[domain.Seat]*bot.Agent) ([]Event, error) {
	if sess.State.Complete() {
		return nil, ErrSessionComplete
	}

	var events []Event
	for !sess.State.Complete() {
		seat := sess.State.NextSeat
		agent, ok := agents[seat]
		if !ok {
			return events, fmt.Errorf("%w: %s", ErrNoAgentForSeat, seat)
		}
		card, err := agent.ChooseCard(ctx, sess.State, seat)
		if err != nil {
			return events, fmt.Errorf("seat %s: %w", seat, err)
		}
		evs, err := s.Play(sess, seat, card)
		if err != nil {
			return events, fmt.Errorf("seat %s played %v: %w", seat, card, err)
		}
		events = append(events, evs...)
	}
	return events, nil
}
