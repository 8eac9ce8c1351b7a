package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubewright/ncube"
)

var (
	demoPattern string
	demoMoves   int
	demoSeed    int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Step through a move sequence interactively",
	Long: `Start an interactive TUI that applies a move sequence one turn at a
time, rendering the cube after each.

Keyboard shortcuts:
  space/enter/n - apply the next move
  a             - apply all remaining moves
  r             - reset to a solved cube
  q/Esc         - quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoPattern, "pattern", "checkerboard", "Move sequence to step through (checkerboard or scramble)")
	demoCmd.Flags().IntVar(&demoMoves, "moves", 20, "Number of moves for the scramble pattern")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 0, "Random seed for the scramble pattern (0 = time-based)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model
type demoModel struct {
	cube     *ncube.Cube
	moves    []ncube.Move
	next     int // index of the next move to apply
	pattern  string
	quitting bool
}

func newDemoModel(size int, pattern string, moves []ncube.Move) *demoModel {
	return &demoModel{
		cube:    ncube.New(size),
		moves:   moves,
		pattern: pattern,
	}
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "enter", "n":
			if m.next < len(m.moves) {
				m.cube.Apply(m.moves[m.next])
				m.next++
			}

		case "a":
			m.cube.Apply(m.moves[m.next:]...)
			m.next = len(m.moves)

		case "r":
			m.cube = ncube.New(m.cube.Size)
			m.next = 0
		}
	}
	return m, nil
}

func (m *demoModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("ncube demo: %s", m.pattern)))
	b.WriteString("\n\n")

	b.WriteString(renderCube(m.cube))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Move %d of %d", m.next, len(m.moves))))
	b.WriteString("\n")

	if m.next > 0 {
		notations := make([]string, m.next)
		for i := 0; i < m.next; i++ {
			notations[i] = m.moves[i].Notation()
		}
		start := 0
		prefix := ""
		if len(notations) > 20 {
			start = len(notations) - 20
			prefix = "... "
		}
		b.WriteString("Applied: " + prefix)
		b.WriteString(moveStyle.Render(strings.Join(notations[start:], " ")))
		b.WriteString("\n")
	}
	if m.next < len(m.moves) {
		b.WriteString("Next: ")
		b.WriteString(moveStyle.Render(m.moves[m.next].Notation()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: space=step  a=all  r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runDemo(cmd *cobra.Command, args []string) error {
	if cubeSize < 1 {
		return fmt.Errorf("invalid cube size %d: must be at least 1", cubeSize)
	}

	var moves []ncube.Move
	switch demoPattern {
	case "checkerboard":
		moves = ncube.CheckerboardMoves(cubeSize)
	case "scramble":
		seed := demoSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		moves = ncube.ScrambleMoves(demoMoves, rand.New(rand.NewSource(seed)))
	default:
		return fmt.Errorf("unknown pattern %q (want checkerboard or scramble)", demoPattern)
	}

	model := newDemoModel(cubeSize, demoPattern, moves)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
