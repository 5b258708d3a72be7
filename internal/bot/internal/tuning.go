package internal

// EvalWeights are the linear coefficients of the evaluation function's
// components. They are tuning parameters, not rules of the game, and are
// exposed as configuration so they can be validated empirically.
type EvalWeights struct {
	// TrickWon scores each trick already secured by the evaluated side.
	TrickWon float64
	// SureWinner scores each card that is the highest still in play in
	// its suit.
	SureWinner float64
	// MasterTrump scores a trump that is guaranteed to win once all
	// higher trumps have left play across all four hands.
	MasterTrump float64
	// RuffPotential scores shortness in a side suit backed by trumps.
	RuffPotential float64
	// LengthPotential scores long suits that can be established.
	LengthPotential float64
	// ExposurePenalty discounts honors sitting in a suit the opponents
	// are positioned to run.
	ExposurePenalty float64
}

// Tuning bundles the evaluation weights with the search thresholds for one
// difficulty configuration.
type Tuning struct {
	Weights EvalWeights
	// DiscardTolerance is the score band within which discard candidates
	// are considered tied and the lowest-card policy decides.
	DiscardTolerance float64
}
