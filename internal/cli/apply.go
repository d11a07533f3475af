package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeplay"
	"github.com/SeamusWaldron/cubeplay/internal/recorder"
	"github.com/SeamusWaldron/cubeplay/internal/storage"
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply moves to a solved cube and print the result",
	Long: `Apply a move sequence to a solved cube and print the sticker net.

Moves come from the arguments, or from --file ("-" reads stdin).

Examples:
  cubeplay apply "R U R' U'"
  cubeplay apply x M2 y2 r
  cubeplay apply --file scramble.txt --hints`,
	RunE: runApply,
}

var (
	applyFile  string
	applyHints bool
	applyPlain bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "Read moves from a file")
	applyCmd.Flags().BoolVar(&applyHints, "hints", false, "Print the turn geometry of every move")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print the net without colors")
}

// readScript returns the move text from the arguments or --file.
func readScript(args []string, file string, stdin io.Reader) (string, error) {
	if file == "" {
		return strings.Join(args, " "), nil
	}
	if file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}

func runApply(cmd *cobra.Command, args []string) error {
	_, log, err := loadSettings()
	if err != nil {
		return err
	}

	script, err := readScript(args, applyFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	moves, err := cubeplay.ParseMoves(script)
	if err != nil {
		return describeParseError(script, err)
	}

	db, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer db.Close()

	cube := cubeplay.New(cubeplay.WithLogger(log))
	session := recorder.NewSession(db, log)
	if _, err := session.Start("apply", script, cube.State()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range moves {
		hint, err := cube.ApplyMove(m)
		if err != nil {
			return fmt.Errorf("apply %s: %w", m, err)
		}
		if applyHints {
			fmt.Fprintln(out, formatHint(m, hint))
		}
	}
	if err := session.RecordMoves(moves, cube.State()); err != nil {
		return err
	}
	held, err := session.LastOrientation()
	if err != nil {
		return err
	}
	if err := session.End(); err != nil {
		return err
	}

	if applyHints {
		fmt.Fprintln(out)
	}
	fmt.Fprint(out, renderNet(cube.Facelets(), applyPlain))
	fmt.Fprintln(out)
	fmt.Fprintln(out, describeState(cube.State()))
	if held != nil {
		fmt.Fprintf(out, "Now held with %s up, %s front\n", held.UpColor, held.FrontColor)
	}

	sum, err := session.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("%d moves, %d orientation changes", sum.Moves, sum.OrientationChanges)))
	return nil
}

// formatHint renders a geometry hint as one line.
func formatHint(m cubeplay.Move, h cubeplay.GeometryHint) string {
	axis := "x"
	switch {
	case h.Axis.Y != 0:
		axis = "y"
	case h.Axis.Z != 0:
		axis = "z"
	}
	degrees := int(math.Round(h.Angle * 180 / math.Pi))
	return fmt.Sprintf("%-3s axis %s %+4d deg  layers %v  corners %v  edges %v",
		m.Notation(), axis, degrees, h.Layers, h.Corners, h.Edges)
}
