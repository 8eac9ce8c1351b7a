// Package render draws a cube as a terminal cross net.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubewright/ncube"
)

// cellStyles maps each color to a styled two-character block.
var cellStyles = map[ncube.Color]lipgloss.Style{
	ncube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")),
	ncube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFF00")),
	ncube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FF0000")),
	ncube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FF6400")),
	ncube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#0000FF")),
	ncube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#008C00")),
}

// Letters renders the cube as one plain letter per facelet.
func Letters(c *ncube.Cube) string {
	return c.String()
}

// Blocks renders the cube with colored two-character blocks, laid out as the
// same cross net as Letters.
func Blocks(c *ncube.Cube) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 2*c.Size)

	writeRow := func(face ncube.Face, row int) {
		for col := 0; col < c.Size; col++ {
			b.WriteString(cellStyles[c.At(face, row, col)].Render("[]"))
		}
	}

	for row := 0; row < c.Size; row++ {
		b.WriteString(pad)
		writeRow(ncube.Up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < c.Size; row++ {
		for _, face := range []ncube.Face{ncube.Left, ncube.Front, ncube.Right, ncube.Back} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < c.Size; row++ {
		b.WriteString(pad)
		writeRow(ncube.Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
