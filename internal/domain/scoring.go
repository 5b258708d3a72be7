package domain

// Score is the duplicate-scoring breakdown for a completed play, from the
// declaring side's perspective: positive when the contract makes, negative
// when it goes down.
type Score struct {
	Contract    Contract
	Vulnerable  bool
	TricksWon   int
	Made        bool
	Overtricks  int
	Undertricks int
	TrickScore  int
	BonusScore  int
	Penalty     int
	Total       int
}

func doublingFactor(d Doubling) int {
	switch d {
	case Doubled:
		return 2
	case Redoubled:
		return 4
	}
	return 1
}

// oddTrickValue returns the undoubled value of the nth odd trick (1-based).
// Minors score 20 per trick, majors 30, and no-trump 40 for the first odd
// trick then 30.
func oddTrickValue(strain Strain, n int) int {
	switch strain {
	case StrainClubs, StrainDiamonds:
		return 20
	case StrainHearts, StrainSpades:
		return 30
	default:
		if n == 1 {
			return 40
		}
		return 30
	}
}

// undertrickPenalty returns the penalty for the nth undertrick (1-based).
// The first undertrick is priced differently from later ones, and the
// schedule changes again under doubling and vulnerability.
func undertrickPenalty(n int, d Doubling, vulnerable bool) int {
	if d == Undoubled {
		if vulnerable {
			return 100
		}
		return 50
	}
	var doubled int
	if vulnerable {
		if n == 1 {
			doubled = 200
		} else {
			doubled = 300
		}
	} else {
		switch {
		case n == 1:
			doubled = 100
		case n <= 3:
			doubled = 200
		default:
			doubled = 300
		}
	}
	if d == Redoubled {
		return doubled * 2
	}
	return doubled
}

// ScoreContract computes the score for a contract given the tricks won by
// the declaring side. It is a pure function of its arguments; no session
// state feeds into it.
func ScoreContract(contract Contract, declarerTricks int, vulnerable bool) Score {
	score := Score{
		Contract:   contract,
		Vulnerable: vulnerable,
		TricksWon:  declarerTricks,
	}
	needed := contract.TricksNeeded()

	if declarerTricks < needed {
		score.Undertricks = needed - declarerTricks
		for n := 1; n <= score.Undertricks; n++ {
			score.Penalty += undertrickPenalty(n, contract.Doubling, vulnerable)
		}
		score.Total = -score.Penalty
		return score
	}

	score.Made = true
	score.Overtricks = declarerTricks - needed

	factor := doublingFactor(contract.Doubling)
	for n := 1; n <= contract.Level; n++ {
		score.TrickScore += oddTrickValue(contract.Strain, n) * factor
	}

	// Overtricks: face value undoubled, banded when doubled or redoubled.
	overtrickValue := oddTrickValue(contract.Strain, 2)
	for n := 0; n < score.Overtricks; n++ {
		switch contract.Doubling {
		case Undoubled:
			score.BonusScore += overtrickValue
		case Doubled:
			if vulnerable {
				score.BonusScore += 200
			} else {
				score.BonusScore += 100
			}
		case Redoubled:
			if vulnerable {
				score.BonusScore += 400
			} else {
				score.BonusScore += 200
			}
		}
	}

	// Game requires 100 points of (doubled) trick score; otherwise part-score.
	if score.TrickScore >= 100 {
		if vulnerable {
			score.BonusScore += 500
		} else {
			score.BonusScore += 300
		}
	} else {
		score.BonusScore += 50
	}

	switch contract.Level {
	case 6:
		if vulnerable {
			score.BonusScore += 750
		} else {
			score.BonusScore += 500
		}
	case 7:
		if vulnerable {
			score.BonusScore += 1500
		} else {
			score.BonusScore += 1000
		}
	}

	// Bonus for making a doubled or redoubled contract.
	switch contract.Doubling {
	case Doubled:
		score.BonusScore += 50
	case Redoubled:
		score.BonusScore += 100
	}

	score.Total = score.TrickScore + score.BonusScore
	return score
}
