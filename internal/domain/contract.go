package domain

import "fmt"

// Strain is the denomination of a contract: a trump suit or no-trump.
type Strain int8

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	NoTrump
)

func (s Strain) String() string {
	if s == NoTrump {
		return "NT"
	}
	return Suit(s).String()
}

// TrumpSuit returns the trump suit and whether the strain has one.
func (s Strain) TrumpSuit() (Suit, bool) {
	if s == NoTrump {
		return 0, false
	}
	return Suit(s), true
}

// Doubling is the doubled state of a contract.
type Doubling int8

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

func (d Doubling) String() string {
	switch d {
	case Doubled:
		return "X"
	case Redoubled:
		return "XX"
	}
	return ""
}

// Contract is the finalized result of the auction, consumed from the
// bidding subsystem.
type Contract struct {
	Level    int // 1..7
	Strain   Strain
	Declarer Seat
	Doubling Doubling
}

func (c Contract) String() string {
	return fmt.Sprintf("%d%s%s by %s", c.Level, c.Strain, c.Doubling, c.Declarer)
}

// ParseContract parses compact contract notation such as "3NT by S" or
// "4SX by E": level, strain, optional doubling, then the declarer.
func ParseContract(s string) (Contract, error) {
	var body, by string
	if _, err := fmt.Sscanf(s, "%s by %s", &body, &by); err != nil {
		return Contract{}, fmt.Errorf("invalid contract %q", s)
	}
	if len(body) < 2 || body[0] < '1' || body[0] > '7' {
		return Contract{}, fmt.Errorf("invalid contract level in %q", s)
	}
	c := Contract{Level: int(body[0] - '0')}

	rest := body[1:]
	for _, x := range []struct {
		suffix   string
		doubling Doubling
	}{{"XX", Redoubled}, {"X", Doubled}} {
		if len(rest) > len(x.suffix) && rest[len(rest)-len(x.suffix):] == x.suffix {
			c.Doubling = x.doubling
			rest = rest[:len(rest)-len(x.suffix)]
			break
		}
	}

	switch rest {
	case "C":
		c.Strain = StrainClubs
	case "D":
		c.Strain = StrainDiamonds
	case "H":
		c.Strain = StrainHearts
	case "S":
		c.Strain = StrainSpades
	case "NT", "N":
		c.Strain = NoTrump
	default:
		return Contract{}, fmt.Errorf("invalid strain in %q", s)
	}

	declarer, err := ParseSeat(by)
	if err != nil {
		return Contract{}, fmt.Errorf("invalid contract %q: %w", s, err)
	}
	c.Declarer = declarer
	return c, nil
}

// TricksNeeded returns the number of tricks the declaring side must win:
// six plus the contract level.
func (c Contract) TricksNeeded() int {
	return 6 + c.Level
}

// Dummy returns the declarer's partner.
func (c Contract) Dummy() Seat {
	return c.Declarer.Partner()
}

// OpeningLeader returns the seat that leads the first trick, the one to
// the declarer's left.
func (c Contract) OpeningLeader() Seat {
	return c.Declarer.Next()
}

// Validate checks the contract holds a legal level.
func (c Contract) Validate() error {
	if c.Level < 1 || c.Level > 7 {
		return fmt.Errorf("contract level %d out of range", c.Level)
	}
	return nil
}
