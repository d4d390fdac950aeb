package maze

import (
	"errors"
	"strings"
)

// Direction is one of the four orthogonal moves. The zero value means "no move".
type Direction uint8

const (
	NoDirection Direction = iota
	North
	South
	East
	West
)

var (
	ErrUnknownDirection = errors.New("unknown direction")

	// Directions maps each direction to its row/column delta.
	Directions = map[Direction]CellPosition{
		North: {Row: -1, Col: 0},
		South: {Row: 1, Col: 0},
		East:  {Row: 0, Col: 1},
		West:  {Row: 0, Col: -1},
	}

	// SearchOrder is the fixed neighbor expansion order: +col, -col, +row, -row.
	// Anything that walks the grid uses it so results are reproducible.
	SearchOrder = []Direction{East, West, South, North}

	directionNames = map[string]Direction{
		"north": North, "up": North, "w": North,
		"south": South, "down": South, "s": South,
		"east": East, "right": East, "d": East,
		"west": West, "left": West, "a": West,
		"": NoDirection, "none": NoDirection,
	}
)

// ParseDirection converts a user facing name (north/up/w, ...) into a Direction.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return NoDirection, ErrUnknownDirection
	}
	return d, nil
}

// Delta returns the row/column offset of a single step. NoDirection yields a zero delta.
func (d Direction) Delta() CellPosition {
	return Directions[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "None"
	}
}
