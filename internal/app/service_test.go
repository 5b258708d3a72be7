package app

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/bot"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

var testContract = domain.Contract{Level: 3, Strain: domain.NoTrump, Declarer: domain.South}

func startSession(t *testing.T, seed int64) (*Service, *Session, []Event) {
	t.Helper()
	svc := NewService(rand.New(rand.NewSource(seed)))
	sess, evs, err := svc.DealSession(testContract, false)
	if err != nil {
		t.Fatalf("DealSession: %v", err)
	}
	return svc, sess, evs
}

// lowestLegal drives the play deterministically without an agent.
func lowestLegal(sess *Session) (domain.Seat, domain.Card) {
	seat := sess.State.NextSeat
	legal := sess.State.LegalPlays(seat)
	return seat, legal.Lowest()
}

func eventKinds(evs []Event) []EventKind {
	kinds := make([]EventKind, len(evs))
	for i, ev := range evs {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestNewSessionStartsPlay(t *testing.T) {
	_, sess, evs := startSession(t, 42)

	if sess.ID == "" {
		t.Error("session id is empty")
	}
	if sess.State.Phase != domain.PhasePlayInProgress {
		t.Errorf("phase = %s, want play_in_progress", sess.State.Phase)
	}
	if sess.State.NextSeat != testContract.OpeningLeader() {
		t.Errorf("opening leader = %s, want %s", sess.State.NextSeat, testContract.OpeningLeader())
	}
	if len(evs) != domain.SeatCount+1 {
		t.Fatalf("events = %v, want four hand_dealt then play_started", eventKinds(evs))
	}
	for i, seat := range domain.Seats {
		if evs[i].Kind != EventHandDealt {
			t.Fatalf("event %d = %s, want hand_dealt", i, evs[i].Kind)
		}
		payload := evs[i].Payload.(HandDealtPayload)
		if payload.Seat != seat || len(payload.Hand) != 13 {
			t.Errorf("hand_dealt %d = seat %s with %d cards, want %s with 13", i, payload.Seat, len(payload.Hand), seat)
		}
		// Dealt hands are private: targeted at their owner, never broadcast.
		if len(evs[i].Recipients) != 1 || evs[i].Recipients[0] != seat {
			t.Errorf("hand_dealt recipients = %v, want only %s", evs[i].Recipients, seat)
		}
	}

	last := evs[len(evs)-1]
	if last.Kind != EventPlayStarted {
		t.Fatalf("last event = %s, want play_started", last.Kind)
	}
	if len(last.Recipients) != 0 {
		t.Errorf("play_started recipients = %v, want broadcast", last.Recipients)
	}
	payload := last.Payload.(PlayStartedPayload)
	if payload.SessionID != sess.ID || payload.Leader != sess.State.NextSeat {
		t.Errorf("payload = %+v does not match session", payload)
	}
}

func TestPlayRevealsDummyOnOpeningLead(t *testing.T) {
	svc, sess, _ := startSession(t, 7)

	seat, card := lowestLegal(sess)
	evs, err := svc.Play(sess, seat, card)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if evs[0].Kind != EventCardPlayed {
		t.Fatalf("events = %v, want card_played first", eventKinds(evs))
	}
	if len(evs) < 2 || evs[1].Kind != EventDummyRevealed {
		t.Fatalf("events = %v, want dummy_revealed after the opening lead", eventKinds(evs))
	}
	payload := evs[1].Payload.(DummyRevealedPayload)
	if payload.Dummy != testContract.Dummy() {
		t.Errorf("dummy = %s, want %s", payload.Dummy, testContract.Dummy())
	}
	if len(payload.Hand) != 13 {
		t.Errorf("dummy hand has %d cards, want 13", len(payload.Hand))
	}

	// Only the opening lead reveals; the next card must not.
	seat, card = lowestLegal(sess)
	evs, err = svc.Play(sess, seat, card)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	for _, ev := range evs {
		if ev.Kind == EventDummyRevealed {
			t.Error("dummy revealed twice")
		}
	}
}

func TestPlayEmitsTrickCompleted(t *testing.T) {
	svc, sess, _ := startSession(t, 9)

	var last []Event
	for i := 0; i < domain.SeatCount; i++ {
		seat, card := lowestLegal(sess)
		evs, err := svc.Play(sess, seat, card)
		if err != nil {
			t.Fatalf("play %d: %v", i, err)
		}
		last = evs
	}

	found := false
	for _, ev := range last {
		if ev.Kind == EventTrickCompleted {
			found = true
			payload := ev.Payload.(TrickCompletedPayload)
			if payload.TricksWon[payload.Winner] != 1 {
				t.Errorf("winner %s credited %d tricks, want 1", payload.Winner, payload.TricksWon[payload.Winner])
			}
		}
	}
	if !found {
		t.Fatalf("events = %v, want trick_completed on the fourth card", eventKinds(last))
	}
}

func TestPlayRejectsIllegalCard(t *testing.T) {
	svc, sess, _ := startSession(t, 21)

	seat := sess.State.NextSeat
	if _, err := svc.Play(sess, seat.Next(), domain.MustCard("2C")); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Errorf("err = %v, want ErrNotYourTurn", err)
	}
}

func TestAutoPlayScoresTheDeal(t *testing.T) {
	svc, sess, _ := startSession(t, 3)

	cfg := bot.DefaultConfig(noopLogger{})
	agents := make(map[domain.Seat]*bot.Agent, domain.SeatCount)
	for _, seat := range domain.Seats {
		a, err := bot.NewAgent(seat.String(), bot.LevelGood, cfg)
		if err != nil {
			t.Fatalf("NewAgent(%s): %v", seat, err)
		}
		agents[seat] = a
	}

	evs, err := svc.AutoPlay(context.Background(), sess, agents)
	if err != nil {
		t.Fatalf("AutoPlay: %v", err)
	}

	if sess.State.Phase != domain.PhaseRoundComplete {
		t.Errorf("phase = %s, want round_complete", sess.State.Phase)
	}
	var scored *HandScoredPayload
	cardsPlayed := 0
	for _, ev := range evs {
		switch ev.Kind {
		case EventCardPlayed:
			cardsPlayed++
		case EventHandScored:
			p := ev.Payload.(HandScoredPayload)
			scored = &p
		}
	}
	if cardsPlayed != 52 {
		t.Errorf("card_played events = %d, want 52", cardsPlayed)
	}
	if scored == nil {
		t.Fatal("no hand_scored event emitted")
	}
	if scored.Score.TricksWon != sess.State.DeclarerTricks() {
		t.Errorf("scored tricks = %d, state says %d", scored.Score.TricksWon, sess.State.DeclarerTricks())
	}
}

func TestAutoPlayMissingAgent(t *testing.T) {
	svc, sess, _ := startSession(t, 5)

	_, err := svc.AutoPlay(context.Background(), sess, map[domain.Seat]*bot.Agent{})
	if !errors.Is(err, ErrNoAgentForSeat) {
		t.Errorf("err = %v, want ErrNoAgentForSeat", err)
	}
}
