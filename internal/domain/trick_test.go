package domain

import "testing"

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name   string
		plays  string // leader is West, then N, E, S
		strain Strain
		want   Seat
	}{
		{
			name:   "highest of led suit wins without trumps",
			plays:  "7H KH 2H 9H",
			strain: NoTrump,
			want:   North,
		},
		{
			name:   "offsuit card never wins in no-trump",
			plays:  "7H AS 2H 9H",
			strain: NoTrump,
			want:   South,
		},
		{
			name:   "lone trump beats high led cards",
			plays:  "AH KH 2S 9H",
			strain: StrainSpades,
			want:   East,
		},
		{
			name:   "highest trump wins among several",
			plays:  "AH 5S 2S 9H",
			strain: StrainSpades,
			want:   North,
		},
		{
			name:   "trump led, highest trump wins",
			plays:  "QS 5S AS 2S",
			strain: StrainSpades,
			want:   East,
		},
		{
			name:   "leader holds when nobody covers",
			plays:  "QH 5D 2C 9C",
			strain: NoTrump,
			want:   West,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trick := trickWith(splitCards(tt.plays)...)
			if got := trick.Winner(tt.strain); got != tt.want {
				t.Errorf("Winner = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitCards(s string) []string {
	var out []string
	for _, c := range MustCards(s) {
		out = append(out, c.String())
	}
	return out
}

func TestWinningPlayPartialTrick(t *testing.T) {
	trick := trickWith("7H", "KH")
	wp := trick.WinningPlay(NoTrump)
	if wp.Seat != North || wp.Card != MustCard("KH") {
		t.Errorf("WinningPlay = %v %v, want North KH", wp.Seat, wp.Card)
	}
}

func TestCardBeats(t *testing.T) {
	if !CardBeats(MustCard("2S"), MustCard("AH"), Hearts, StrainSpades) {
		t.Error("a trump should beat the ace of the led suit")
	}
	if CardBeats(MustCard("AD"), MustCard("7H"), Hearts, StrainSpades) {
		t.Error("an offsuit non-trump can never beat the led suit")
	}
	if !CardBeats(MustCard("KH"), MustCard("7H"), Hearts, NoTrump) {
		t.Error("higher card of led suit should win")
	}
}
