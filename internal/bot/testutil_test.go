package bot

import (
	"github.com/heroiclabs/nakama-common/runtime"

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

func testConfig() Config {
	return DefaultConfig(noopLogger{})
}

// midTrickPosition builds a small in-play state for strategy tests.
func midTrickPosition(contract domain.Contract, next domain.Seat, hands map[domain.Seat]string, trickPlays ...domain.TrickPlay) *domain.PlayState {
	ps := &domain.PlayState{
		Phase:         domain.PhasePlayInProgress,
		Contract:      contract,
		NextSeat:      next,
		CurrentTrick:  domain.NewTrick(),
		DummyRevealed: true,
	}
	for seat, cards := range hands {
		ps.Hands[seat] = domain.MustCards(cards)
	}
	for _, p := range trickPlays {
		ps.CurrentTrick.Add(p.Seat, p.Card)
	}
	return ps
}
