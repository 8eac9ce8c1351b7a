package ncube

import "fmt"

// Rotate turns one layer of the cube: the layer at the given depth under
// face, in the given direction. Depth 0 turns the outermost layer, which
// rotates the face's own grid as well as the bordering cells of the four
// adjacent faces; deeper layers only shift border cells.
//
// Rotate panics if depth is outside [0, size). It never fails otherwise.
func (c *Cube) Rotate(face Face, movement Movement, depth int) {
	if depth < 0 || depth >= c.Size {
		panic(fmt.Sprintf("ncube: depth %d out of range for size %d cube", depth, c.Size))
	}
	if depth == 0 {
		c.rotateGrid(face, movement)
	}
	c.cycleBorders(face, movement, depth)
}

// rotateGrid rotates a face's own grid in place, ring by ring from the
// outside in. Each step permutes the four cells that map onto each other
// under a quarter turn; the center cell of an odd grid never moves.
func (c *Cube) rotateGrid(face Face, movement Movement) {
	grid := c.Faces[face]
	s := c.Size - 1
	for ring := 0; ring < c.Size/2; ring++ {
		for i := ring; i < s-ring; i++ {
			cycle4([4]*Color{
				&grid[ring][i],     // top edge
				&grid[i][s-ring],   // right edge
				&grid[s-ring][s-i], // bottom edge
				&grid[s-i][ring],   // left edge
			}, movement)
		}
	}
}

// cycleBorders shifts the border cells of the four adjacent faces at the
// given depth. For each position along the border it resolves one cell per
// neighbor via the geometry table and permutes the four colors.
func (c *Cube) cycleBorders(face Face, movement Movement, depth int) {
	sides := sidesOf(face)
	for i := 0; i < c.Size; i++ {
		var cells [4]*Color
		for k, side := range sides {
			row, col := borderCell(side.Corner, i, c.Size, depth)
			cells[k] = &c.Faces[side.Face][row][col]
		}
		cycle4(cells, movement)
	}
}

// cycle4 permutes four cells in place. All four old values are read before
// any cell is written, so the cells may alias each other in any order.
// Clockwise shifts each value one slot forward through the list,
// counter-clockwise one slot backward, and a half turn swaps opposite pairs
// (two 2-cycles).
func cycle4(cells [4]*Color, movement Movement) {
	old := [4]Color{*cells[0], *cells[1], *cells[2], *cells[3]}
	var shift int
	switch movement {
	case Clockwise:
		shift = 3
	case CounterClockwise:
		shift = 1
	case Half:
		shift = 2
	}
	for k := range cells {
		*cells[k] = old[(k+shift)%4]
	}
}
