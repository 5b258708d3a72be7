package domain

import "fmt"

// Phase represents the lifecycle stage of one round.
type Phase string

const (
	// PhaseSetup is the initial state before any cards exist.
	PhaseSetup Phase = "setup"
	// PhaseDealing is the state while hands are being dealt.
	PhaseDealing Phase = "dealing"
	// PhaseBiddingComplete is entered once the auction has produced a contract.
	PhaseBiddingComplete Phase = "bidding_complete"
	// PhasePlayStarting is the state before the opening lead.
	PhasePlayStarting Phase = "play_starting"
	// PhasePlayInProgress is the active card-play state.
	PhasePlayInProgress Phase = "play_in_progress"
	// PhasePlayComplete is entered when the 13th trick is resolved.
	PhasePlayComplete Phase = "play_complete"
	// PhaseScoring is the state while the score is computed.
	PhaseScoring Phase = "scoring"
	// PhaseRoundComplete is the terminal state.
	PhaseRoundComplete Phase = "round_complete"
)

// transitions is the explicit table of legal phase changes.
var transitions = map[Phase][]Phase{
	PhaseSetup:           {PhaseDealing},
	PhaseDealing:         {PhaseBiddingComplete},
	PhaseBiddingComplete: {PhasePlayStarting},
	PhasePlayStarting:    {PhasePlayInProgress},
	PhasePlayInProgress:  {PhasePlayComplete},
	PhasePlayComplete:    {PhaseScoring},
	PhaseScoring:         {PhaseRoundComplete},
}

// PlayState holds the authoritative state for the card play of one deal.
// It is mutated only through its methods; search operates on Clone copies.
type PlayState struct {
	Phase      Phase
	Contract   Contract
	Vulnerable bool // vulnerability of the declaring side

	Hands         Deal
	CurrentTrick  *Trick
	History       []*Trick
	TricksWon     [SeatCount]int
	NextSeat      Seat
	DummyRevealed bool

	cardsPlayed int
}

// PlayResult describes the outcome of a single applied card, emitted to the
// calling layer.
type PlayResult struct {
	Card          Card
	Seat          Seat
	TricksWon     [SeatCount]int
	TrickComplete bool
	TrickWinner   Seat
	DummyRevealed bool // true only on the play that revealed the dummy
	Terminal      bool
}

// NewPlayState builds the state for one play from a finalized contract and
// a full deal. The state starts at PhaseBiddingComplete.
func NewPlayState(contract Contract, deal Deal, vulnerable bool) (*PlayState, error) {
	if err := contract.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[Card]bool, 52)
	for _, s := range Seats {
		if len(deal[s]) != 13 {
			return nil, fmt.Errorf("seat %s dealt %d cards, want 13", s, len(deal[s]))
		}
		for _, c := range deal[s] {
			if seen[c] {
				return nil, fmt.Errorf("card %s dealt twice", c)
			}
			seen[c] = true
		}
	}
	return &PlayState{
		Phase:      PhaseBiddingComplete,
		Contract:   contract,
		Vulnerable: vulnerable,
		Hands:      deal.Clone(),
		NextSeat:   contract.OpeningLeader(),
	}, nil
}

// Transition moves the state to the given phase, failing with an
// InvalidTransitionError for any edge absent from the table.
func (ps *PlayState) Transition(to Phase) error {
	for _, next := range transitions[ps.Phase] {
		if next == to {
			ps.Phase = to
			return nil
		}
	}
	return &InvalidTransitionError{From: ps.Phase, To: to}
}

// Begin starts the card play. The opening lead belongs to the seat on the
// declarer's left; the dummy stays hidden until that lead hits the table.
func (ps *PlayState) Begin() error {
	if err := ps.Transition(PhasePlayStarting); err != nil {
		return err
	}
	if err := ps.Transition(PhasePlayInProgress); err != nil {
		return err
	}
	ps.CurrentTrick = NewTrick()
	ps.NextSeat = ps.Contract.OpeningLeader()
	return nil
}

// LegalPlays returns the legal cards for the seat in the current trick.
func (ps *PlayState) LegalPlays(seat Seat) Cards {
	return LegalPlays(ps.Hands[seat], ps.CurrentTrick)
}

// Play applies one card. It enforces turn order and the follow-suit rule,
// reveals the dummy after the opening lead, resolves completed tricks and
// transitions to PhasePlayComplete after the 13th.
func (ps *PlayState) Play(seat Seat, card Card) (PlayResult, error) {
	if ps.Phase != PhasePlayInProgress {
		if ps.Phase == PhasePlayComplete {
			return PlayResult{}, ErrPlayComplete
		}
		return PlayResult{}, fmt.Errorf("cannot play in phase %s", ps.Phase)
	}
	if seat != ps.NextSeat {
		return PlayResult{}, ErrNotYourTurn
	}
	if !ps.Hands[seat].Contains(card) {
		return PlayResult{}, ErrCardNotHeld
	}
	legal := ps.LegalPlays(seat)
	if !legal.Contains(card) {
		led, _ := ps.CurrentTrick.LedSuit()
		return PlayResult{}, &LegalityError{Seat: seat, Card: card, Led: led}
	}

	ps.Hands[seat] = ps.Hands[seat].Remove(card)
	ps.CurrentTrick.Add(seat, card)
	ps.cardsPlayed++

	result := PlayResult{Card: card, Seat: seat}
	if ps.cardsPlayed == 1 {
		ps.DummyRevealed = true
		result.DummyRevealed = true
	}

	if ps.CurrentTrick.Complete() {
		winner := ps.CurrentTrick.Winner(ps.Contract.Strain)
		ps.TricksWon[winner]++
		ps.History = append(ps.History, ps.CurrentTrick)
		result.TrickComplete = true
		result.TrickWinner = winner
		if len(ps.History) == 13 {
			if err := ps.Transition(PhasePlayComplete); err != nil {
				return PlayResult{}, err
			}
			ps.CurrentTrick = nil
			result.Terminal = true
		} else {
			ps.CurrentTrick = NewTrick()
			ps.NextSeat = winner
		}
	} else {
		ps.NextSeat = seat.Next()
	}

	result.TricksWon = ps.TricksWon
	return result, nil
}

// HandVisible reports whether the viewer may consult the owner's hand. The
// dummy's hand becomes visible to everyone only once the opening lead has
// been played; before that even the declarer may not consult it.
func (ps *PlayState) HandVisible(viewer, owner Seat) bool {
	if viewer == owner {
		return true
	}
	if owner == ps.Contract.Dummy() && ps.DummyRevealed {
		return true
	}
	// Declarer plays the dummy's cards once revealed; the reverse never holds.
	return false
}

// Complete reports whether all 13 tricks have been resolved.
func (ps *PlayState) Complete() bool {
	return len(ps.History) == 13
}

// DeclarerTricks returns the tricks won by the declaring side.
func (ps *PlayState) DeclarerTricks() int {
	return ps.SideTricks(SideOf(ps.Contract.Declarer))
}

// SideTricks returns the tricks won by one partnership.
func (ps *PlayState) SideTricks(side Side) int {
	n := 0
	for _, s := range Seats {
		if SideOf(s) == side {
			n += ps.TricksWon[s]
		}
	}
	return n
}

// Clone returns a deep copy suitable for simulating forward during search.
func (ps *PlayState) Clone() *PlayState {
	out := &PlayState{
		Phase:         ps.Phase,
		Contract:      ps.Contract,
		Vulnerable:    ps.Vulnerable,
		Hands:         ps.Hands.Clone(),
		TricksWon:     ps.TricksWon,
		NextSeat:      ps.NextSeat,
		DummyRevealed: ps.DummyRevealed,
		cardsPlayed:   ps.cardsPlayed,
	}
	if ps.CurrentTrick != nil {
		out.CurrentTrick = ps.CurrentTrick.Clone()
	}
	out.History = make([]*Trick, len(ps.History))
	for i, t := range ps.History {
		out.History[i] = t.Clone()
	}
	return out
}
