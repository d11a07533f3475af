package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeplay"
	"github.com/SeamusWaldron/cubeplay/internal/notation"
)

var parseCmd = &cobra.Command{
	Use:   "parse [moves...]",
	Short: "Check move notation and print it normalized",
	Long: `Parse a move sequence and print it in canonical form.

Examples:
  cubeplay parse "R U R' U' // sexy move"
  cubeplay parse --invert "R U2 F'"
  cubeplay parse --describe "r U M'"`,
	RunE: runParse,
}

var (
	parseFile     string
	parseInvert   bool
	parseDescribe bool
)

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Read moves from a file")
	parseCmd.Flags().BoolVarP(&parseInvert, "invert", "i", false, "Print the inverse sequence")
	parseCmd.Flags().BoolVarP(&parseDescribe, "describe", "d", false, "Also print each move as a plain instruction")
}

func runParse(cmd *cobra.Command, args []string) error {
	script, err := readScript(args, parseFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	moves, err := cubeplay.ParseMoves(script)
	if err != nil {
		return describeParseError(script, err)
	}
	if parseInvert {
		moves = cubeplay.InvertSequence(moves)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cubeplay.FormatMoves(moves))
	if parseDescribe {
		for i, line := range notation.DescribeSequence(moves) {
			fmt.Fprintf(out, "%3d. %-4s %s\n", i+1, moves[i].Notation(), line)
		}
	}
	fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("%d moves", len(moves))))
	return nil
}

// describeParseError points at the rejected character.
func describeParseError(script string, err error) error {
	var perr *cubeplay.ParseError
	if !errors.As(err, &perr) {
		return err
	}

	lines := strings.Split(script, "\n")
	if perr.Line < 1 || perr.Line > len(lines) {
		return err
	}
	line := strings.TrimRight(lines[perr.Line-1], "\r")
	caret := strings.Repeat(" ", perr.Column-1) + "^"
	return fmt.Errorf("%w\n  %s\n  %s", err, line, caret)
}
