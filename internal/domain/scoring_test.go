package domain

import "testing"

func TestScoreContract(t *testing.T) {
	tests := []struct {
		name       string
		contract   Contract
		tricks     int
		vulnerable bool
		want       int
	}{
		{
			name:     "3NT non-vul made exactly",
			contract: Contract{Level: 3, Strain: NoTrump, Declarer: South},
			tricks:   9,
			want:     400, // 100 trick score + 300 game bonus
		},
		{
			name:     "3NT non-vul with an overtrick",
			contract: Contract{Level: 3, Strain: NoTrump, Declarer: South},
			tricks:   10,
			want:     430,
		},
		{
			name:       "4S vulnerable doubled made exactly",
			contract:   Contract{Level: 4, Strain: StrainSpades, Declarer: North, Doubling: Doubled},
			tricks:     10,
			vulnerable: true,
			want:       790, // 240 + 500 game + 50 insult
		},
		{
			name:       "2H doubled vulnerable down three",
			contract:   Contract{Level: 2, Strain: StrainHearts, Declarer: East, Doubling: Doubled},
			tricks:     5,
			vulnerable: true,
			want:       -800, // 200 + 300 + 300
		},
		{
			name:     "2H doubled non-vul down three",
			contract: Contract{Level: 2, Strain: StrainHearts, Declarer: East, Doubling: Doubled},
			tricks:   5,
			want:     -500, // 100 + 200 + 200
		},
		{
			name:     "minor part-score",
			contract: Contract{Level: 2, Strain: StrainClubs, Declarer: West},
			tricks:   8,
			want:     90, // 40 + 50 part-score
		},
		{
			name:     "doubled minor part-score becomes game",
			contract: Contract{Level: 3, Strain: StrainClubs, Declarer: West, Doubling: Doubled},
			tricks:   9,
			want:     470, // 120 + 300 game + 50 insult
		},
		{
			name:       "small slam vulnerable",
			contract:   Contract{Level: 6, Strain: StrainSpades, Declarer: North},
			tricks:     12,
			vulnerable: true,
			want:       1430, // 180 + 500 game + 750 slam
		},
		{
			name:     "grand slam non-vul in no-trump",
			contract: Contract{Level: 7, Strain: NoTrump, Declarer: South},
			tricks:   13,
			want:     1520, // 220 + 300 game + 1000 slam
		},
		{
			name:     "undoubled down two non-vul",
			contract: Contract{Level: 4, Strain: StrainHearts, Declarer: North},
			tricks:   8,
			want:     -100,
		},
		{
			name:       "undoubled down two vulnerable",
			contract:   Contract{Level: 4, Strain: StrainHearts, Declarer: North},
			tricks:     8,
			vulnerable: true,
			want:       -200,
		},
		{
			name:     "redoubled down two non-vul",
			contract: Contract{Level: 3, Strain: NoTrump, Declarer: South, Doubling: Redoubled},
			tricks:   7,
			want:     -600, // 2 * (100 + 200)
		},
		{
			name:     "doubled overtricks non-vul",
			contract: Contract{Level: 2, Strain: StrainSpades, Declarer: North, Doubling: Doubled},
			tricks:   10,
			want:     670, // 120 trick + 300 game + 50 insult + 2*100 overtricks
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreContract(tt.contract, tt.tricks, tt.vulnerable)
			if got.Total != tt.want {
				t.Errorf("Total = %d, want %d (breakdown %+v)", got.Total, tt.want, got)
			}
		})
	}
}

// TestScoreIdempotence pins that scoring the same terminal facts twice
// yields identical results: the computation is pure.
func TestScoreIdempotence(t *testing.T) {
	contract := Contract{Level: 4, Strain: StrainSpades, Declarer: North, Doubling: Doubled}
	first := ScoreContract(contract, 10, true)
	second := ScoreContract(contract, 10, true)
	if first != second {
		t.Errorf("scores differ: %+v vs %+v", first, second)
	}
}

func TestUndertrickSchedule(t *testing.T) {
	// First undertrick must be priced differently from later ones when doubled.
	if p1 := undertrickPenalty(1, Doubled, false); p1 != 100 {
		t.Errorf("first doubled non-vul undertrick = %d, want 100", p1)
	}
	if p2 := undertrickPenalty(2, Doubled, false); p2 != 200 {
		t.Errorf("second doubled non-vul undertrick = %d, want 200", p2)
	}
	if p4 := undertrickPenalty(4, Doubled, false); p4 != 300 {
		t.Errorf("fourth doubled non-vul undertrick = %d, want 300", p4)
	}
	if p1 := undertrickPenalty(1, Doubled, true); p1 != 200 {
		t.Errorf("first doubled vul undertrick = %d, want 200", p1)
	}
	if p1 := undertrickPenalty(1, Redoubled, true); p1 != 400 {
		t.Errorf("first redoubled vul undertrick = %d, want 400", p1)
	}
}
