package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cubewright/ncube"
)

var (
	scrambleMoves int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube with random moves",
	Long: `Apply random face turns to a solved cube and print the result.

Each scramble gets an id and prints its seed and move list, so a scramble
can be reproduced exactly with --seed.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 20, "Number of random moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}
	if scrambleMoves < 0 {
		return fmt.Errorf("invalid move count %d", scrambleMoves)
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := ncube.Scramble(c, scrambleMoves, rng)

	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.Notation()
	}

	fmt.Printf("Scramble: %s\n", uuid.NewString())
	fmt.Printf("Seed: %d\n", seed)
	fmt.Printf("Moves: %s\n\n", strings.Join(notations, " "))
	fmt.Print(renderCube(c))
	return nil
}
