package domain

import "strings"

// TrickPlay is a single card played into a trick by a seat.
type TrickPlay struct {
	Card Card
	Seat Seat
}

// Trick is an ordered list of at most four plays. The first entry's seat
// is the leader.
type Trick struct {
	Plays []TrickPlay
}

// NewTrick returns an empty trick.
func NewTrick() *Trick {
	return &Trick{Plays: make([]TrickPlay, 0, SeatCount)}
}

// Clone returns an independent copy of the trick.
func (t *Trick) Clone() *Trick {
	plays := make([]TrickPlay, len(t.Plays))
	copy(plays, t.Plays)
	return &Trick{Plays: plays}
}

// Add appends a play to the trick.
func (t *Trick) Add(seat Seat, card Card) {
	t.Plays = append(t.Plays, TrickPlay{Card: card, Seat: seat})
}

// Len returns the number of cards played so far.
func (t *Trick) Len() int {
	return len(t.Plays)
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == SeatCount
}

// Leader returns the seat that led the trick.
func (t *Trick) Leader() Seat {
	return t.Plays[0].Seat
}

// LedSuit returns the suit of the led card and whether a card has been led.
func (t *Trick) LedSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// Winner resolves the trick under the given strain: the highest trump wins
// if any trump was played, otherwise the highest card of the led suit.
func (t *Trick) Winner(strain Strain) Seat {
	best := t.Plays[0]
	led := t.Plays[0].Card.Suit
	trump, hasTrump := strain.TrumpSuit()
	for _, p := range t.Plays[1:] {
		if beats(p.Card, best.Card, led, trump, hasTrump) {
			best = p
		}
	}
	return best.Seat
}

// WinningPlay returns the play currently winning a possibly partial trick.
func (t *Trick) WinningPlay(strain Strain) TrickPlay {
	best := t.Plays[0]
	led := t.Plays[0].Card.Suit
	trump, hasTrump := strain.TrumpSuit()
	for _, p := range t.Plays[1:] {
		if beats(p.Card, best.Card, led, trump, hasTrump) {
			best = p
		}
	}
	return best
}

// beats reports whether candidate outranks current given the led suit and
// any trump suit.
func beats(candidate, current Card, led Suit, trump Suit, hasTrump bool) bool {
	if hasTrump {
		if candidate.Suit == trump && current.Suit != trump {
			return true
		}
		if candidate.Suit != trump && current.Suit == trump {
			return false
		}
		if candidate.Suit == trump && current.Suit == trump {
			return candidate.Rank > current.Rank
		}
	}
	// Neither card is trump: only the led suit can win.
	if candidate.Suit != led {
		return false
	}
	if current.Suit != led {
		return true
	}
	return candidate.Rank > current.Rank
}

// CardBeats reports whether playing candidate would take the lead of the
// trick from current. Exposed for move ordering.
func CardBeats(candidate, current Card, led Suit, strain Strain) bool {
	trump, hasTrump := strain.TrumpSuit()
	return beats(candidate, current, led, trump, hasTrump)
}

func (t *Trick) String() string {
	parts := make([]string, len(t.Plays))
	for i, p := range t.Plays {
		parts[i] = p.Seat.String() + ":" + p.Card.String()
	}
	return strings.Join(parts, " ")
}
