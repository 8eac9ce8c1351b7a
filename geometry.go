package ncube

// Corner labels the grid corner of a neighboring face nearest the turning
// face's border. It is only ever a parameter to borderCell.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Side names the border of one face: the row or column of Face nearest
// Corner participates when an adjacent face turns.
type Side struct {
	Face   Face
	Corner Corner
}

// sideTable maps each face to its four neighbors in turn order. The order is
// load-bearing: cycleBorders shifts values through the list to realize the
// rotation direction, so reordering entries reverses turns. Size-independent
// (topology, not coordinates).
var sideTable = [6][4]Side{
	Up: {
		{Back, TopRight},
		{Right, TopRight},
		{Front, TopRight},
		{Left, TopRight},
	},
	Left: {
		{Up, TopLeft},
		{Front, TopLeft},
		{Down, TopLeft},
		{Back, BottomRight},
	},
	Front: {
		{Up, BottomLeft},
		{Right, TopLeft},
		{Down, TopRight},
		{Left, BottomRight},
	},
	Right: {
		{Up, BottomRight},
		{Back, TopLeft},
		{Down, BottomRight},
		{Front, BottomRight},
	},
	Back: {
		{Up, TopRight},
		{Left, TopLeft},
		{Down, BottomLeft},
		{Right, BottomRight},
	},
	Down: {
		{Front, BottomLeft},
		{Right, BottomLeft},
		{Back, BottomLeft},
		{Left, BottomLeft},
	},
}

// sidesOf returns the ordered neighbor list for a face.
func sidesOf(face Face) [4]Side {
	return sideTable[face]
}

// borderCell maps a position along a neighbor's border to a grid cell.
// i sweeps [0, size) along the border edge named by corner; depth offsets
// the edge inward, selecting deeper layers.
func borderCell(corner Corner, i, size, depth int) (row, col int) {
	switch corner {
	case TopLeft:
		return i, depth
	case TopRight:
		return depth, size - 1 - i
	case BottomRight:
		return size - 1 - i, size - 1 - depth
	case BottomLeft:
		return size - 1 - depth, i
	default:
		panic("ncube: unknown corner")
	}
}
