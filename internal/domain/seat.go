package domain

import "fmt"

// Seat is one of the four table positions. Play proceeds clockwise
// North, East, South, West.
type Seat int8

const (
	North Seat = iota
	East
	South
	West
)

// SeatCount is the number of positions at the table.
const SeatCount = 4

// Seats lists all seats in play order.
var Seats = []Seat{North, East, South, West}

func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// ParseSeat parses a one-letter seat name.
func ParseSeat(s string) (Seat, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("invalid seat %q", s)
}

// Next returns the seat to the left, the next to play.
func (s Seat) Next() Seat {
	return (s + 1) % SeatCount
}

// Partner returns the seat sitting opposite.
func (s Seat) Partner() Seat {
	return (s + 2) % SeatCount
}

// Side identifies one of the two fixed partnerships.
type Side int8

const (
	NorthSouth Side = iota
	EastWest
)

func (p Side) String() string {
	if p == NorthSouth {
		return "NS"
	}
	return "EW"
}

// Opponent returns the other partnership.
func (p Side) Opponent() Side {
	return 1 - p
}

// SideOf returns the partnership a seat belongs to.
func SideOf(s Seat) Side {
	if s == North || s == South {
		return NorthSouth
	}
	return EastWest
}

// SameSide reports whether two seats are partners (or the same seat).
func SameSide(a, b Seat) bool {
	return SideOf(a) == SideOf(b)
}
