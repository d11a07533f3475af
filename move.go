package cubeplay

import "strings"

// Face identifies what a move turns: an outer face, a middle slice, two
// layers at once (wide), or the whole cube.
type Face int

const (
	FaceR Face = iota // Right
	FaceL             // Left
	FaceU             // Up
	FaceD             // Down
	FaceF             // Front
	FaceB             // Back

	FaceM // Middle slice, follows L
	FaceS // Standing slice, follows F
	FaceE // Equatorial slice, follows D

	FaceWideR // r
	FaceWideL // l
	FaceWideU // u
	FaceWideD // d
	FaceWideF // f
	FaceWideB // b

	FaceX // Whole cube about the R axis
	FaceY // Whole cube about the U axis
	FaceZ // Whole cube about the F axis

	numFaces
)

var faceLetters = [numFaces]string{
	FaceR: "R", FaceL: "L", FaceU: "U", FaceD: "D", FaceF: "F", FaceB: "B",
	FaceM: "M", FaceS: "S", FaceE: "E",
	FaceWideR: "r", FaceWideL: "l", FaceWideU: "u", FaceWideD: "d", FaceWideF: "f", FaceWideB: "b",
	FaceX: "x", FaceY: "y", FaceZ: "z",
}

// String returns the notation letter for the face.
func (f Face) String() string {
	if !f.Valid() {
		return "?"
	}
	return faceLetters[f]
}

// Valid reports whether f is one of the 18 known identifiers.
func (f Face) Valid() bool {
	return f >= 0 && f < numFaces
}

// IsSlice reports whether f is M, S or E.
func (f Face) IsSlice() bool {
	return f == FaceM || f == FaceS || f == FaceE
}

// IsWide reports whether f is a lowercase two-layer move.
func (f Face) IsWide() bool {
	return f >= FaceWideR && f <= FaceWideB
}

// IsRotation reports whether f is x, y or z.
func (f Face) IsRotation() bool {
	return f >= FaceX && f <= FaceZ
}

// Turn represents the direction and magnitude of a move.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// index maps a turn to its row in the permutation tables.
func (t Turn) index() int {
	switch t {
	case CCW:
		return 1
	case Double:
		return 2
	default:
		return 0
	}
}

// Move is a single move in cube notation.
//
// Prime and Double may both be set ("R2'"). A half turn has no direction,
// so such a move behaves exactly like the plain double; see Normalize.
type Move struct {
	Face   Face
	Prime  bool // Counter-clockwise
	Double bool // 180 degrees
}

// Turn returns the direction and magnitude of the move.
func (m Move) Turn() Turn {
	switch {
	case m.Double:
		return Double
	case m.Prime:
		return CCW
	default:
		return CW
	}
}

// Normalize clears Prime on a double move.
func (m Move) Normalize() Move {
	if m.Double {
		m.Prime = false
	}
	return m
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, r, M', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn() {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Invert returns the move that undoes m: same face and magnitude, opposite
// direction.
func Invert(m Move) Move {
	return Move{Face: m.Face, Prime: !m.Prime, Double: m.Double}
}

// Inverse returns Invert(m).
func (m Move) Inverse() Move {
	return Invert(m)
}

// InvertSequence returns the moves that undo seq, last move first.
func InvertSequence(seq []Move) []Move {
	inv := make([]Move, len(seq))
	for i, m := range seq {
		inv[len(seq)-1-i] = Invert(m)
	}
	return inv
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
