package ncube

import (
	"fmt"
	"strconv"
	"strings"
)

// Movement is the sense of a layer turn.
type Movement int

const (
	Clockwise Movement = iota
	CounterClockwise
	Half // 180 degrees
)

func (m Movement) String() string {
	switch m {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	case Half:
		return "half"
	default:
		return "?"
	}
}

// Inverse returns the movement undoing this one. Half is its own inverse.
func (m Movement) Inverse() Movement {
	switch m {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	default:
		return m
	}
}

// suffix is the notation suffix for the movement.
func (m Movement) suffix() string {
	switch m {
	case CounterClockwise:
		return "'"
	case Half:
		return "2"
	default:
		return ""
	}
}

// Move is a single layer turn: a face, a direction, and a layer depth
// counted inward from the face (0 = the face's own layer).
type Move struct {
	Face     Face
	Movement Movement
	Depth    int
}

// Notation returns the move in standard notation: R, R', R2 for outer
// turns, with a layer-number prefix for inner layers (2R is depth 1,
// 3R2 a half turn at depth 2).
func (m Move) Notation() string {
	prefix := ""
	if m.Depth > 0 {
		prefix = strconv.Itoa(m.Depth + 1)
	}
	return prefix + m.Face.String() + m.Movement.suffix()
}

// Inverse returns the move undoing this one.
func (m Move) Inverse() Move {
	m.Movement = m.Movement.Inverse()
	return m
}

// ParseMove parses a single move in the notation produced by Notation.
// It validates syntax only; Depth is not checked against any cube size.
func ParseMove(s string) (Move, error) {
	rest := s

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	depth := 0
	if digits > 0 {
		layer, err := strconv.Atoi(rest[:digits])
		if err != nil || layer < 1 {
			return Move{}, fmt.Errorf("invalid layer number in move %q", s)
		}
		depth = layer - 1
		rest = rest[digits:]
	}

	if rest == "" {
		return Move{}, fmt.Errorf("invalid move %q: missing face", s)
	}
	face, err := ParseFace(rest[:1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	rest = rest[1:]

	movement := Clockwise
	switch rest {
	case "":
	case "'":
		movement = CounterClockwise
	case "2":
		movement = Half
	default:
		return Move{}, fmt.Errorf("invalid move %q: unknown suffix %q", s, rest)
	}

	return Move{Face: face, Movement: movement, Depth: depth}, nil
}

// ParseMoves parses a whitespace-separated move sequence.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Apply applies a sequence of moves to the cube in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.Rotate(m.Face, m.Movement, m.Depth)
	}
}

// Predefined outer-layer moves for the common faces.
var (
	U      = Move{Face: Up, Movement: Clockwise}
	UPrime = Move{Face: Up, Movement: CounterClockwise}
	U2     = Move{Face: Up, Movement: Half}
	D      = Move{Face: Down, Movement: Clockwise}
	DPrime = Move{Face: Down, Movement: CounterClockwise}
	D2     = Move{Face: Down, Movement: Half}
	F      = Move{Face: Front, Movement: Clockwise}
	FPrime = Move{Face: Front, Movement: CounterClockwise}
	F2     = Move{Face: Front, Movement: Half}
	B      = Move{Face: Back, Movement: Clockwise}
	BPrime = Move{Face: Back, Movement: CounterClockwise}
	B2     = Move{Face: Back, Movement: Half}
	R      = Move{Face: Right, Movement: Clockwise}
	RPrime = Move{Face: Right, Movement: CounterClockwise}
	R2     = Move{Face: Right, Movement: Half}
	L      = Move{Face: Left, Movement: Clockwise}
	LPrime = Move{Face: Left, Movement: CounterClockwise}
	L2     = Move{Face: Left, Movement: Half}
)
