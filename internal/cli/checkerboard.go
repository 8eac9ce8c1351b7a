package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubewright/ncube"
)

var checkerboardCmd = &cobra.Command{
	Use:   "checkerboard",
	Short: "Paint a checkerboard pattern",
	Long: `Apply the checkerboard pattern to a solved cube and print the result.

The pattern half-turns every odd inner layer along three axes. Cubes of
size 1 and 2 have no such layers and come out unchanged.`,
	RunE: runCheckerboard,
}

func init() {
	rootCmd.AddCommand(checkerboardCmd)
}

func runCheckerboard(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}
	moves := ncube.Checkerboard(c)
	fmt.Printf("Applied %d moves\n\n", len(moves))
	fmt.Print(renderCube(c))
	return nil
}
