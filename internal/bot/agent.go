package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

// ErrIllegalChoice reports a strategy returning a card the move generator
// rejects. The card is never applied and never silently replaced; this is
// an internal bug surfaced loudly.
var ErrIllegalChoice = errors.New("strategy chose an illegal card")

// Agent is one autonomous player: a difficulty tier bound to a strategy,
// with every choice re-validated before it reaches the state machine.
type Agent struct {
	Name  string
	Level Level

	brain  Brain
	logger runtime.Logger
}

// NewAgent builds an agent for the difficulty tier.
func NewAgent(name string, level Level, cfg Config) (*Agent, error) {
	brain, err := NewBrain(level, cfg)
	if err != nil {
		return nil, err
	}
	return &Agent{Name: name, Level: level, brain: brain, logger: cfg.Logger}, nil
}

// ChooseCard asks the strategy for a card and re-validates it against the
// move generator. The strategy works on a snapshot; the caller's state is
// never touched.
func (a *Agent) ChooseCard(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, error) {
	card, err := a.brain.ChooseCard(ctx, ps.Clone(), seat)
	if err != nil {
		return domain.Card{}, err
	}
	if !domain.LegalPlays(ps.Hands[seat], ps.CurrentTrick).Contains(card) {
		a.logger.Error("agent %s (%s) chose illegal card %v for seat %s", a.Name, a.Level, card, seat)
		return domain.Card{}, fmt.Errorf("%w: %v by %s", ErrIllegalChoice, card, seat)
	}
	return card, nil
}

// Decision is the outcome of an asynchronous choice.
type Decision struct {
	Card domain.Card
	Err  error
}

// ChooseCardAsync runs the decision on its own goroutine over a private
// snapshot. Cancelling the context returns the best move found so far;
// abandoning the channel needs no cleanup since the search holds no
// external resources.
func (a *Agent) ChooseCardAsync(ctx context.Context, ps *domain.PlayState, seat domain.Seat) <-chan Decision {
	snapshot := ps.Clone()
	ch := make(chan Decision, 1)
	go func() {
		card, err := a.brain.ChooseCard(ctx, snapshot, seat)
		if err == nil && !domain.LegalPlays(snapshot.Hands[seat], snapshot.CurrentTrick).Contains(card) {
			err = fmt.Errorf("%w: %v by %s", ErrIllegalChoice, card, seat)
		}
		ch <- Decision{Card: card, Err: err}
	}()
	return ch
}
