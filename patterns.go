package ncube

import "math/rand"

// CheckerboardMoves returns the move sequence producing a checkerboard
// pattern on a solved cube of the given size: for the Right, Up, and Front
// faces, every odd inner layer below the half-way mark gets a half turn
// (expressed as two quarter turns), mirrored to the matching layer counted
// from the opposite face when the two differ.
func CheckerboardMoves(size int) []Move {
	var moves []Move
	for _, face := range [...]Face{Right, Up, Front} {
		for depth := 1; depth < (size+1)/2; depth += 2 {
			moves = append(moves,
				Move{Face: face, Movement: Clockwise, Depth: depth},
				Move{Face: face, Movement: Clockwise, Depth: depth},
			)
			if mirror := size - depth - 1; mirror != depth {
				moves = append(moves,
					Move{Face: face, Movement: Clockwise, Depth: mirror},
					Move{Face: face, Movement: Clockwise, Depth: mirror},
				)
			}
		}
	}
	return moves
}

// Checkerboard applies the checkerboard pattern to the cube and returns the
// moves it applied.
func Checkerboard(c *Cube) []Move {
	moves := CheckerboardMoves(c.Size)
	c.Apply(moves...)
	return moves
}

// ScrambleMoves returns n random clockwise outer-layer turns drawn from rng.
func ScrambleMoves(n int, rng *rand.Rand) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = Move{Face: Face(rng.Intn(6)), Movement: Clockwise}
	}
	return moves
}

// Scramble applies n random moves to the cube and returns them so the
// scramble can be replayed or inverted.
func Scramble(c *Cube, n int, rng *rand.Rand) []Move {
	moves := ScrambleMoves(n, rng)
	c.Apply(moves...)
	return moves
}
