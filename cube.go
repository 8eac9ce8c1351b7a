package ncube

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Down face when solved
	Yellow Color = 1 // Up face when solved
	Red    Color = 2 // Right face when solved
	Orange Color = 3 // Left face when solved
	Blue   Color = 4 // Front face when solved
	Green  Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Face identifies one of the six cube faces. The index order matters: the
// adjacency table in geometry.go is written against it, and String renders
// the faces in net order (Up on top, then the Left-Front-Right-Back strip,
// then Down).
type Face int

const (
	Up    Face = 0
	Left  Face = 1
	Front Face = 2
	Right Face = 3
	Back  Face = 4
	Down  Face = 5
)

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// ParseFace parses a single face letter (U, L, F, R, B, D).
func ParseFace(s string) (Face, error) {
	switch s {
	case "U":
		return Up, nil
	case "L":
		return Left, nil
	case "F":
		return Front, nil
	case "R":
		return Right, nil
	case "B":
		return Back, nil
	case "D":
		return Down, nil
	default:
		return 0, fmt.Errorf("unknown face %q", s)
	}
}

// Cube represents an N-by-N-by-N cube as six N-by-N facelet grids.
// Faces[face][row][col] addresses a single facelet; rows count from the top
// of each face as drawn in the net, columns from the left.
type Cube struct {
	Size  int
	Faces [6][][]Color
}

// New creates a solved cube of the given size. It panics if size < 1.
func New(size int) *Cube {
	if size < 1 {
		panic(fmt.Sprintf("ncube: invalid cube size %d", size))
	}
	c := &Cube{Size: size}
	for face := Up; face <= Down; face++ {
		grid := make([][]Color, size)
		for row := range grid {
			grid[row] = make([]Color, size)
			for col := range grid[row] {
				grid[row][col] = faceToSolvedColor(face)
			}
		}
		c.Faces[face] = grid
	}
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case Up:
		return Yellow
	case Left:
		return Orange
	case Front:
		return Blue
	case Right:
		return Red
	case Back:
		return Green
	case Down:
		return White
	default:
		return White
	}
}

// At returns the color of a single facelet.
func (c *Cube) At(face Face, row, col int) Color {
	return c.Faces[face][row][col]
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{Size: c.Size}
	for f := range c.Faces {
		grid := make([][]Color, c.Size)
		for row := range grid {
			grid[row] = append([]Color(nil), c.Faces[f][row]...)
		}
		clone.Faces[f] = grid
	}
	return clone
}

// Equal reports whether both cubes hold identical facelet grids.
func (c *Cube) Equal(other *Cube) bool {
	if c.Size != other.Size {
		return false
	}
	for f := range c.Faces {
		for row := 0; row < c.Size; row++ {
			for col := 0; col < c.Size; col++ {
				if c.Faces[f][row][col] != other.Faces[f][row][col] {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved returns true if every face is uniformly its solved color.
func (c *Cube) IsSolved() bool {
	for face := Up; face <= Down; face++ {
		want := faceToSolvedColor(face)
		for _, row := range c.Faces[face] {
			for _, got := range row {
				if got != want {
					return false
				}
			}
		}
	}
	return true
}

// String renders the cube as a plain-letter cross net: Up above the
// Left-Front-Right-Back strip, Down below, one letter per facelet.
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat(" ", c.Size)

	writeRow := func(row []Color) {
		for _, col := range row {
			b.WriteString(col.String())
		}
	}

	for _, row := range c.Faces[Up] {
		b.WriteString(pad)
		writeRow(row)
		b.WriteByte('\n')
	}
	for r := 0; r < c.Size; r++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			writeRow(c.Faces[face][r])
		}
		b.WriteByte('\n')
	}
	for _, row := range c.Faces[Down] {
		b.WriteString(pad)
		writeRow(row)
		b.WriteByte('\n')
	}

	return b.String()
}
