package domain

import "math/rand"

// Deal is the four dealt hands keyed by seat, fixed for one play.
type Deal [SeatCount]Cards

// Clone returns a deep copy of the deal.
func (d Deal) Clone() Deal {
	var out Deal
	for s, h := range d {
		out[s] = h.Clone()
	}
	return out
}

// TotalCards returns the number of cards remaining across all hands.
func (d Deal) TotalCards() int {
	n := 0
	for _, h := range d {
		n += len(h)
	}
	return n
}

// NewDeck returns a sorted 52-card deck.
func NewDeck() Cards {
	deck := make(Cards, 0, 52)
	for _, s := range Suits {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck Cards, rng *rand.Rand) Cards {
	out := deck.Clone()
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DealHands shuffles a fresh deck and deals thirteen cards to each seat.
func DealHands(rng *rand.Rand) Deal {
	deck := ShuffleDeck(NewDeck(), rng)
	var deal Deal
	for i, c := range deck {
		seat := Seat(i % SeatCount)
		deal[seat] = append(deal[seat], c)
	}
	for s := range deal {
		deal[s].Sort()
	}
	return deal
}
