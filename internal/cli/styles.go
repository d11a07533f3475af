package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeplay"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles paints one sticker per color.
var stickerStyles = map[cubeplay.Color]lipgloss.Style{
	cubeplay.White:  sticker("255"),
	cubeplay.Yellow: sticker("226"),
	cubeplay.Green:  sticker("34"),
	cubeplay.Blue:   sticker("27"),
	cubeplay.Red:    sticker("160"),
	cubeplay.Orange: sticker("208"),
}

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("0"))
}

// renderNet draws the unfolded cube. With plain set it falls back to
// letters.
func renderNet(f cubeplay.Facelets, plain bool) string {
	if plain {
		return f.String()
	}

	cell := func(c cubeplay.Color) string {
		return stickerStyles[c].Render(" " + c.String() + " ")
	}
	row := func(face cubeplay.CubeFace, r int) string {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(cell(f[face][r*3+col]))
		}
		return b.String()
	}

	pad := strings.Repeat(" ", 9)
	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubeplay.CubeFaceU, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cubeplay.CubeFace{cubeplay.CubeFaceL, cubeplay.CubeFaceF, cubeplay.CubeFaceR, cubeplay.CubeFaceB} {
			b.WriteString(row(face, r))
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubeplay.CubeFaceD, r) + "\n")
	}
	return b.String()
}

// describeState is a one-line summary of a cube state.
func describeState(s cubeplay.CubeState) string {
	held := "up " + s.UpColor().String() + ", front " + s.FrontColor().String()
	if s.IsSolved() {
		return solvedStyle.Render("SOLVED") + statusStyle.Render(" ("+held+")")
	}
	return statusStyle.Render("scrambled (" + held + ")")
}
