// ncube - terminal playground for N-by-N-by-N Rubik's-style cubes.
package main

import (
	"github.com/cubewright/ncube/internal/cli"
)

func main() {
	cli.Execute()
}
