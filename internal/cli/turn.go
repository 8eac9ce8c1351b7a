package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubewright/ncube"
)

var turnCmd = &cobra.Command{
	Use:   "turn <moves...>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence of moves to a solved cube and print the result.

Moves use standard notation: face letters U, L, F, R, B, D with an optional
' (counter-clockwise) or 2 (half turn) suffix. Inner layers take a layer
number prefix, so 2R turns the second layer in from the right face and 3F2
half-turns the third layer behind the front face.

Example:

  ncube turn R U R' U'
  ncube turn --size 5 2R2 3U`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTurn,
}

func init() {
	rootCmd.AddCommand(turnCmd)
}

func runTurn(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}

	moves, err := ncube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	// Depth is only syntax-checked by the parser; range-check it against
	// the cube before handing anything to the engine.
	for _, m := range moves {
		if m.Depth >= c.Size {
			return fmt.Errorf("move %s: layer %d out of range for a size %d cube",
				m.Notation(), m.Depth+1, c.Size)
		}
	}

	c.Apply(moves...)
	fmt.Print(renderCube(c))
	return nil
}
