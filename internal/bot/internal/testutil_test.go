package internal

import (
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

// position builds a small mid-play state for search and evaluator tests.
// Hands are given per seat; the trick may already hold plays.
func position(contract domain.Contract, next domain.Seat, hands map[domain.Seat]string, trickPlays ...domain.TrickPlay) *domain.PlayState {
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

func play(seat domain.Seat, card string) domain.TrickPlay {
	return domain.TrickPlay{Seat: seat, Card: domain.MustCard(card)}
}

var testTuning = Tuning{
	Weights: EvalWeights{
		TrickWon:        10.0,
		SureWinner:      6.0,
		MasterTrump:     7.0,
		RuffPotential:   2.0,
		LengthPotential: 1.0,
		ExposurePenalty: 1.5,
	},
	DiscardTolerance: 0.5,
}
