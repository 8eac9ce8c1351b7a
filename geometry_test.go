package ncube

import "testing"

var oppositeFace = map[Face]Face{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
	Front: Back,
	Back:  Front,
}

func TestSideTableListsFourDistinctNeighbors(t *testing.T) {
	for face := Up; face <= Down; face++ {
		seen := map[Face]bool{}
		for _, side := range sidesOf(face) {
			if side.Face == face {
				t.Errorf("face %v lists itself as a neighbor", face)
			}
			if side.Face == oppositeFace[face] {
				t.Errorf("face %v lists its opposite %v as a neighbor", face, side.Face)
			}
			if seen[side.Face] {
				t.Errorf("face %v lists neighbor %v twice", face, side.Face)
			}
			seen[side.Face] = true
		}
		if len(seen) != 4 {
			t.Errorf("face %v has %d distinct neighbors, want 4", face, len(seen))
		}
	}
}

func TestSideTableSymmetry(t *testing.T) {
	// Adjacency must be mutual: every neighbor of F lists F back.
	for face := Up; face <= Down; face++ {
		for _, side := range sidesOf(face) {
			found := false
			for _, back := range sidesOf(side.Face) {
				if back.Face == face {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("face %v lists %v, but %v does not list %v", face, side.Face, side.Face, face)
			}
		}
	}
}

func TestBorderCell(t *testing.T) {
	cases := []struct {
		corner   Corner
		i, depth int
		row, col int
	}{
		// size 5, walking each edge at depth 0
		{TopLeft, 0, 0, 0, 0},
		{TopLeft, 4, 0, 4, 0},
		{TopRight, 0, 0, 0, 4},
		{TopRight, 4, 0, 0, 0},
		{BottomRight, 0, 0, 4, 4},
		{BottomRight, 4, 0, 0, 4},
		{BottomLeft, 0, 0, 4, 0},
		{BottomLeft, 4, 0, 4, 4},
		// deeper layers offset the edge inward
		{TopLeft, 2, 1, 2, 1},
		{TopRight, 2, 1, 1, 2},
		{BottomRight, 2, 3, 2, 1},
		{BottomLeft, 2, 3, 1, 2},
	}
	for _, tc := range cases {
		row, col := borderCell(tc.corner, tc.i, 5, tc.depth)
		if row != tc.row || col != tc.col {
			t.Errorf("borderCell(%v, %d, 5, %d) = (%d,%d), want (%d,%d)",
				tc.corner, tc.i, tc.depth, row, col, tc.row, tc.col)
		}
	}
}

func TestBorderCellSweepIsDistinctAndInBounds(t *testing.T) {
	const size = 6
	for corner := TopLeft; corner <= BottomRight; corner++ {
		for depth := 0; depth < size; depth++ {
			seen := map[[2]int]bool{}
			for i := 0; i < size; i++ {
				row, col := borderCell(corner, i, size, depth)
				if row < 0 || row >= size || col < 0 || col >= size {
					t.Fatalf("borderCell(%v, %d, %d, %d) out of bounds: (%d,%d)",
						corner, i, size, depth, row, col)
				}
				cell := [2]int{row, col}
				if seen[cell] {
					t.Fatalf("borderCell(%v, _, %d, %d) revisits cell (%d,%d)",
						corner, size, depth, row, col)
				}
				seen[cell] = true
			}
		}
	}
}
