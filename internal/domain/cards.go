package domain

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Suit is one of the four card suits, ordered clubs-low.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists all suits in ascending order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	return "?"
}

// IsMinor reports whether the suit is clubs or diamonds.
func (s Suit) IsMinor() bool {
	return s == Clubs || s == Diamonds
}

// Rank is a card rank, two-low and ace-high.
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	}
	return "?"
}

// IsHonor reports whether the rank is queen or better. Honors are the ranks
// the discard tie-break must protect.
func (r Rank) IsHonor() bool {
	return r >= Queen
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-character literal such as "QS" or "7d".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("cannot parse card %q", s)
	}
	up := strings.ToUpper(s)
	var r Rank
	switch up[0] {
	case 'T':
		r = Ten
	case 'J':
		r = Jack
	case 'Q':
		r = Queen
	case 'K':
		r = King
	case 'A':
		r = Ace
	default:
		if up[0] < '2' || up[0] > '9' {
			return Card{}, fmt.Errorf("cannot parse rank of %q", s)
		}
		r = Rank(up[0] - '0')
	}
	var su Suit
	switch up[1] {
	case 'C':
		su = Clubs
	case 'D':
		su = Diamonds
	case 'H':
		su = Hearts
	case 'S':
		su = Spades
	default:
		return Card{}, fmt.Errorf("cannot parse suit of %q", s)
	}
	return Card{Rank: r, Suit: su}, nil
}

// MustCard parses a card literal and panics on failure. Test helper.
func MustCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Cards is a container of cards, usually one seat's hand.
type Cards []Card

// ParseCards parses a space-separated list of card literals.
func ParseCards(s string) (Cards, error) {
	fields := strings.Fields(s)
	out := make(Cards, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustCards parses a space-separated list of card literals, panicking on failure.
func MustCards(s string) Cards {
	cs, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func (cs Cards) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Clone returns an independent copy.
func (cs Cards) Clone() Cards {
	return slices.Clone(cs)
}

// Contains reports whether the card is present.
func (cs Cards) Contains(c Card) bool {
	return slices.Contains(cs, c)
}

// HasSuit reports whether any card of the suit is present.
func (cs Cards) HasSuit(s Suit) bool {
	for _, c := range cs {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// BySuit returns the cards of the given suit, preserving order.
func (cs Cards) BySuit(s Suit) Cards {
	var out Cards
	for _, c := range cs {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// CountSuit returns how many cards of the suit are held.
func (cs Cards) CountSuit(s Suit) int {
	n := 0
	for _, c := range cs {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// Highest returns the highest-ranked card, which must exist.
func (cs Cards) Highest() Card {
	best := cs[0]
	for _, c := range cs[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

// Lowest returns the lowest-ranked card, which must exist.
func (cs Cards) Lowest() Card {
	best := cs[0]
	for _, c := range cs[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

// Remove returns a copy of the container without the first occurrence of c.
func (cs Cards) Remove(c Card) Cards {
	out := make(Cards, 0, len(cs))
	removed := false
	for _, h := range cs {
		if !removed && h == c {
			removed = true
			continue
		}
		out = append(out, h)
	}
	return out
}

// Sort orders the cards by suit then descending rank, the conventional
// hand-diagram order.
func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Suit != cs[j].Suit {
			return cs[i].Suit > cs[j].Suit
		}
		return cs[i].Rank > cs[j].Rank
	})
}

// Equal reports whether both containers hold the same multiset of cards.
func (cs Cards) Equal(other Cards) bool {
	a := cs.Clone()
	b := other.Clone()
	a.Sort()
	b.Sort()
	return slices.Equal(a, b)
}
