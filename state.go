package cubeplay

import "fmt"

// Color represents a center or sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	numColors = 6
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace is a face slot of the cube model. It is distinct from Face,
// which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// opposite returns the face across the cube.
func (f CubeFace) opposite() CubeFace {
	return f ^ 1
}

// solvedColor returns the color of a face when solved.
func solvedColor(f CubeFace) Color {
	return Color(f)
}

// homeFace returns the fixed-frame face whose center carries c.
func homeFace(c Color) CubeFace {
	return CubeFace(c)
}

// CubeState is the canonical cube state.
//
// Pieces are tracked in the fixed frame defined by the centers: slot i of
// CornerPermutation holds the piece that started in slot
// CornerPermutation[i], twisted by CornerOrientation[i]. Centers records
// which center color currently sits at each physical face slot, indexed by
// CubeFace; it is the only part that whole-cube rotations change.
//
// CubeState holds arrays only, so assigning it copies it.
type CubeState struct {
	CornerPermutation [8]int
	CornerOrientation [8]int // 0..2
	EdgePermutation   [12]int
	EdgeOrientation   [12]int // 0..1
	Centers           [6]Color
}

// Solved returns the solved state: white up, green front.
func Solved() CubeState {
	var s CubeState
	for i := range s.CornerPermutation {
		s.CornerPermutation[i] = i
	}
	for i := range s.EdgePermutation {
		s.EdgePermutation[i] = i
	}
	for f := range s.Centers {
		s.Centers[f] = solvedColor(CubeFace(f))
	}
	return s
}

// IsSolved reports whether every piece is home and untwisted. The cube may
// be held in any orientation.
func (s CubeState) IsSolved() bool {
	for i := 0; i < 8; i++ {
		if s.CornerPermutation[i] != i || s.CornerOrientation[i] != 0 {
			return false
		}
	}
	for i := 0; i < 12; i++ {
		if s.EdgePermutation[i] != i || s.EdgeOrientation[i] != 0 {
			return false
		}
	}
	return true
}

// UpColor returns the center color currently on top.
func (s CubeState) UpColor() Color {
	return s.Centers[CubeFaceU]
}

// FrontColor returns the center color currently facing the viewer.
func (s CubeState) FrontColor() Color {
	return s.Centers[CubeFaceF]
}

// Validate checks the structural invariants of a reachable state:
// permutations are bijections, orientations are in range and sum to zero,
// and the centers form a real cube orientation.
func (s CubeState) Validate() error {
	if !isPermutation(s.CornerPermutation[:]) {
		return fmt.Errorf("%w: corner permutation %v", ErrCorruptState, s.CornerPermutation)
	}
	if !isPermutation(s.EdgePermutation[:]) {
		return fmt.Errorf("%w: edge permutation %v", ErrCorruptState, s.EdgePermutation)
	}

	twist := 0
	for _, o := range s.CornerOrientation {
		if o < 0 || o > 2 {
			return fmt.Errorf("%w: corner orientation %v", ErrCorruptState, s.CornerOrientation)
		}
		twist += o
	}
	if twist%3 != 0 {
		return fmt.Errorf("%w: corner twist sum %d", ErrCorruptState, twist)
	}

	flip := 0
	for _, o := range s.EdgeOrientation {
		if o < 0 || o > 1 {
			return fmt.Errorf("%w: edge orientation %v", ErrCorruptState, s.EdgeOrientation)
		}
		flip += o
	}
	if flip%2 != 0 {
		return fmt.Errorf("%w: edge flip sum %d", ErrCorruptState, flip)
	}

	if _, err := orientationOf(s.Centers); err != nil {
		return err
	}
	return nil
}

func isPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
