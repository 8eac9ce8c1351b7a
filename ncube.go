// Package ncube models an N-by-N-by-N Rubik's-style cube.
//
// The cube keeps six facelet grids and mutates them in place through layer
// rotations: a face, a turn direction, and a layer depth select one slice of
// the cube to turn. Depth 0 is the outermost layer (the face itself plus the
// bordering rows and columns of the four adjacent faces); deeper layers only
// shift border cells on the adjacent faces.
//
// # Quick Start
//
//	c := ncube.New(3)
//
//	// Turn the right face a quarter turn clockwise.
//	c.Rotate(ncube.Right, ncube.Clockwise, 0)
//
//	// Or apply moves parsed from notation.
//	moves, err := ncube.ParseMoves("R U R' U' 2F2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Apply(moves...)
//
//	fmt.Println(c)
//
// # Notation
//
// Moves use standard face letters (U, L, F, R, B, D) with "'" for
// counter-clockwise and "2" for a half turn. Inner layers carry a layer
// number prefix: 2R is the second layer in from the right face, 3R2 a half
// turn of the third layer.
//
// # Preconditions
//
// The rotation engine runs without per-call validation. Rotate panics on a
// depth outside [0, size), and New panics on a size below 1. Callers taking
// untrusted input should validate first (ParseMove only checks syntax, not
// cube size).
//
// The Cube is a plain in-memory value with exclusive-owner mutation
// semantics: it performs no locking, and concurrent mutation of the same
// cube must be serialized by the caller.
package ncube
