package bot

import botinternal "github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/internal"

// DefaultTuning balances secured tricks against positional potential. The
// weights and the discard tolerance are tuning parameters validated
// empirically, not rules of the game; override them through Config.
var DefaultTuning = botinternal.Tuning{
	Weights: botinternal.EvalWeights{
		TrickWon:        10.0,
		SureWinner:      6.0,
		MasterTrump:     7.0,
		RuffPotential:   2.0,
		LengthPotential: 1.0,
		ExposurePenalty: 1.5,
	},
	DiscardTolerance: 0.5,
}
