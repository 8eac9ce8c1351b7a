// Package cli implements the command-line interface for ncube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubewright/ncube"
	"github.com/cubewright/ncube/internal/render"
)

const version = "0.1.0"

var (
	// Global flags
	cubeSize int
	plain    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "ncube",
	Short: "N-by-N Rubik's cube playground",
	Long: `ncube - a terminal playground for N-by-N-by-N Rubik's-style cubes.

Build a cube of any size, turn its layers from the command line, scramble
it, paint a checkerboard, or step through move sequences interactively.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&cubeSize, "size", "n", 3, "Cube size (layers per edge)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Render letters instead of colored blocks")
}

// newCube builds the cube selected by the --size flag.
func newCube() (*ncube.Cube, error) {
	if cubeSize < 1 {
		return nil, fmt.Errorf("invalid cube size %d: must be at least 1", cubeSize)
	}
	return ncube.New(cubeSize), nil
}

// renderCube renders per the --plain flag.
func renderCube(c *ncube.Cube) string {
	if plain {
		return render.Letters(c)
	}
	return render.Blocks(c)
}
