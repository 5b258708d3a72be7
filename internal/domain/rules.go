package domain

// LegalPlays returns exactly the cards the hand may play into the trick:
// cards of the led suit when the hand holds any, otherwise the whole hand.
// Leading a fresh trick allows any card.
//
// This is the single implementation of the follow-suit predicate. Both live
// validation in the state machine and search-tree branching route through
// it so the two can never diverge.
func LegalPlays(hand Cards, trick *Trick) Cards {
	if trick == nil {
		return hand.Clone()
	}
	led, ok := trick.LedSuit()
	if !ok || trick.Complete() {
		return hand.Clone()
	}
	if follows := hand.BySuit(led); len(follows) > 0 {
		return follows
	}
	return hand.Clone()
}
