package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a solved cube",
	Long:  `Render a solved cube of the selected size as a cross net.`,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}
	fmt.Print(renderCube(c))
	return nil
}
