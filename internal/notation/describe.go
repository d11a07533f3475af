// Package notation renders moves as plain-language instructions.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubeplay"
)

// Reference frame: facing the front face, as the cube is currently held.
// Each entry gives the clockwise and anti-clockwise wording.
var phrases = map[cubeplay.Face][2]string{
	cubeplay.FaceR: {"R up", "R down"},
	cubeplay.FaceL: {"L down", "L up"},
	cubeplay.FaceU: {"T rotate left", "T rotate right"},
	cubeplay.FaceD: {"B rotate right", "B rotate left"},
	cubeplay.FaceF: {"F rotate clockwise", "F rotate anti-clockwise"},
	cubeplay.FaceB: {"Back rotate clockwise", "Back rotate anti-clockwise"},

	cubeplay.FaceM: {"middle down", "middle up"},
	cubeplay.FaceE: {"equator rotate right", "equator rotate left"},
	cubeplay.FaceS: {"standing rotate clockwise", "standing rotate anti-clockwise"},

	cubeplay.FaceWideR: {"R and middle up", "R and middle down"},
	cubeplay.FaceWideL: {"L and middle down", "L and middle up"},
	cubeplay.FaceWideU: {"T and equator rotate left", "T and equator rotate right"},
	cubeplay.FaceWideD: {"B and equator rotate right", "B and equator rotate left"},
	cubeplay.FaceWideF: {"F and standing rotate clockwise", "F and standing rotate anti-clockwise"},
	cubeplay.FaceWideB: {"Back and standing rotate clockwise", "Back and standing rotate anti-clockwise"},

	cubeplay.FaceX: {"tilt cube up", "tilt cube down"},
	cubeplay.FaceY: {"turn cube left", "turn cube right"},
	cubeplay.FaceZ: {"tilt cube right", "tilt cube left"},
}

// Describe converts a move to a plain-language instruction.
// Half turns use the clockwise wording with "x 2".
func Describe(m cubeplay.Move) string {
	p, ok := phrases[m.Face]
	if !ok {
		return m.Notation() // Fallback to standard notation
	}

	switch m.Turn() {
	case cubeplay.CCW:
		return p[1]
	case cubeplay.Double:
		return p[0] + " x 2"
	default:
		return p[0]
	}
}

// DescribeSequence converts a slice of moves to instructions.
func DescribeSequence(moves []cubeplay.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = Describe(m)
	}
	return result
}

// FormatDescribedSequence formats moves as a comma-separated list of
// instructions.
func FormatDescribedSequence(moves []cubeplay.Move) string {
	return strings.Join(DescribeSequence(moves), ", ")
}
