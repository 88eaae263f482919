package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
)

var flagSolution bool

var printCmd = &cobra.Command{
	Use:   "print [pack]",
	Short: "Print a puzzle",
	Long: `Generate a puzzle and print it as text, for paper or for scripts.

With --solution the placed words are listed with their start cell and
direction, and their letters are highlighted in the grid.

Examples:
  wordsearch print
  wordsearch print animals --solution
  wordsearch print --seed 7 --size 12 --words 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&flagSolution, "solution", false, "Show where each word is hidden")
}

func runPrint(cmd *cobra.Command, args []string) error {
	logger, err := newLogger("wordsearch", os.Stderr)
	if err != nil {
		return err
	}

	lib, closeLib := openLibrary(logger)
	defer closeLib()

	pack, err := lib.Resolve(cmd.Context(), packArg(args))
	if err != nil {
		return err
	}

	puzzle := wordsearch.Generate(core.NewRand(flagSeed), pack.Words, app.params)
	if dropped := len(puzzle.Drawn) - len(puzzle.Words); dropped > 0 {
		logger.Warn("words could not be placed", "dropped", dropped)
	}

	printPuzzle(cmd.OutOrStdout(), pack.Title, puzzle, flagSolution)
	return nil
}

var solutionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// printPuzzle writes the grid with letters spaced out, then the word list.
func printPuzzle(w io.Writer, title string, p wordsearch.Puzzle, solution bool) {
	marked := make(map[wordsearch.Coord]bool)
	if solution {
		for _, pl := range p.Placements {
			for _, c := range pl.Cells() {
				marked[c] = true
			}
		}
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	n := p.Grid.Size()
	for row := 0; row < n; row++ {
		cells := make([]string, n)
		for col := 0; col < n; col++ {
			c := wordsearch.C(row, col)
			letter := string(p.Grid.At(c))
			if marked[c] {
				letter = solutionStyle.Render(letter)
			}
			cells[col] = letter
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cells, " "))
	}

	fmt.Fprintln(w)
	if !solution {
		fmt.Fprintf(w, "  %s\n", strings.Join(p.Words, "  "))
		return
	}

	longest := 0
	for _, word := range p.Words {
		longest = core.Max(longest, len(word))
	}
	for _, pl := range p.Placements {
		fmt.Fprintf(w, "  %-*s  %s %s\n", longest, pl.Word, pl.Start, pl.Dir)
	}
}
