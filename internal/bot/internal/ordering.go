package internal

import (
	"sort"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
)

// OrderMoves returns the legal cards in the order the search should examine
// them. Ordering is context-sensitive: it decides which branches alpha-beta
// prunes and, through the tie-break policy, which of several equal-looking
// cards is actually played.
func OrderMoves(ps *domain.PlayState, seat domain.Seat, legal domain.Cards) domain.Cards {
	trick := ps.CurrentTrick
	if trick == nil || trick.Len() == 0 {
		return orderLead(ps.Hands[seat], legal)
	}

	led, _ := trick.LedSuit()
	if ps.Hands[seat].HasSuit(led) {
		return orderFollow(ps, legal)
	}

	trump, hasTrump := ps.Contract.Strain.TrumpSuit()
	if hasTrump && legal.HasSuit(trump) {
		return orderVoidWithTrumps(ps.Hands[seat], legal, trump)
	}
	return orderDiscards(ps.Hands[seat], legal)
}

// orderFollow examines likely trick winners first, cheapest winner leading,
// then the losers from the bottom up.
func orderFollow(ps *domain.PlayState, legal domain.Cards) domain.Cards {
	led, _ := ps.CurrentTrick.LedSuit()
	winning := ps.CurrentTrick.WinningPlay(ps.Contract.Strain)

	var winners, losers domain.Cards
	for _, c := range legal {
		if domain.CardBeats(c, winning.Card, led, ps.Contract.Strain) {
			winners = append(winners, c)
		} else {
			losers = append(losers, c)
		}
	}
	sortByRank(winners, true)
	sortByRank(losers, true)
	return append(winners, losers...)
}

// orderVoidWithTrumps tries cheap ruffs before discards.
func orderVoidWithTrumps(hand, legal domain.Cards, trump domain.Suit) domain.Cards {
	var ruffs, rest domain.Cards
	for _, c := range legal {
		if c.Suit == trump {
			ruffs = append(ruffs, c)
		} else {
			rest = append(rest, c)
		}
	}
	sortByRank(ruffs, true)
	return append(ruffs, orderDiscards(hand, rest)...)
}

// orderDiscards puts the cheapest material first: low cards from the
// weakest suit. Honors go last so a tied score can never throw one away.
func orderDiscards(hand, legal domain.Cards) domain.Cards {
	out := legal.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return discardLess(hand, out[i], out[j])
	})
	return out
}

// discardLess orders a before b when a is the safer discard.
func discardLess(hand domain.Cards, a, b domain.Card) bool {
	if a.Rank.IsHonor() != b.Rank.IsHonor() {
		return !a.Rank.IsHonor()
	}
	sa, sb := suitStrength(hand, a.Suit), suitStrength(hand, b.Suit)
	if sa != sb {
		return sa < sb
	}
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

// suitStrength is the weakness metric for the discard policy: a suit headed
// by a low card and holding few cards is weak and safe to shed from.
func suitStrength(hand domain.Cards, suit domain.Suit) int {
	cards := hand.BySuit(suit)
	if len(cards) == 0 {
		return 0
	}
	return int(cards.Highest().Rank)*4 + len(cards)
}

// PreferredDiscard applies the discard tie-break policy to candidates whose
// evaluated scores are indistinguishable: the lowest-ranked card from the
// weakest suit wins, and an honor is never chosen while a spot card is
// available. This rule is what keeps the engine from visibly throwing away
// winners.
func PreferredDiscard(hand, candidates domain.Cards) domain.Card {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if discardLess(hand, c, best) {
			best = c
		}
	}
	return best
}

// IsDiscardContext reports whether the seat is void in the led suit and the
// chosen cards would be discards rather than ruffs.
func IsDiscardContext(ps *domain.PlayState, seat domain.Seat) bool {
	trick := ps.CurrentTrick
	if trick == nil || trick.Len() == 0 || trick.Complete() {
		return false
	}
	led, _ := trick.LedSuit()
	return !ps.Hands[seat].HasSuit(led)
}

// orderLead applies the opening/establishment heuristic: lead from length
// and from the top of a sequence rather than in arbitrary card order.
func orderLead(hand, legal domain.Cards) domain.Cards {
	out := legal.Clone()
	score := func(c domain.Card) int {
		length := hand.CountSuit(c.Suit)
		seq := sequenceLength(hand, c)
		v := length*2 + seq*3
		if c.Rank.IsHonor() && seq == 1 {
			// An unsupported honor lead gives a trick away too often.
			v -= 4
		}
		return v
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := score(out[i]), score(out[j])
		if si != sj {
			return si > sj
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Suit < out[j].Suit
	})
	return out
}

// sequenceLength counts the touching cards headed by c in the same hand.
func sequenceLength(hand domain.Cards, c domain.Card) int {
	n := 1
	for r := c.Rank - 1; r >= domain.Two; r-- {
		if !hand.Contains(domain.Card{Rank: r, Suit: c.Suit}) {
			break
		}
		n++
	}
	return n
}

func sortByRank(cs domain.Cards, ascending bool) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Rank != cs[j].Rank {
			if ascending {
				return cs[i].Rank < cs[j].Rank
			}
			return cs[i].Rank > cs[j].Rank
		}
		return cs[i].Suit < cs[j].Suit
	})
}
