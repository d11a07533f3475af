package cubeplay

import (
	"fmt"
	"math"
)

// Vector is a direction in the cube's physical frame: +X right, +Y up,
// +Z towards the viewer.
type Vector struct {
	X, Y, Z float64
}

// GeometryHint tells a renderer how to animate a move: which pieces turn,
// about which axis and by how much. It describes the physical cube and
// does not depend on the cube state.
type GeometryHint struct {
	Axis  Vector
	Angle float64 // Radians, right-handed about Axis

	// Layers are the coordinates along Axis (-1, 0 or 1) of the turning
	// layers.
	Layers []int

	// Physical slots inside the turning layers.
	Corners []int
	Edges   []int
	Centers []CubeFace
}

type turnGeometry struct {
	axis   int // 0 = x, 1 = y, 2 = z
	layers []int
	sign   float64 // Sign of the clockwise angle about the positive axis
}

var allLayers = []int{-1, 0, 1}

// Clockwise is seen from the face the move is named after, so faces on the
// negative side of an axis turn with a positive angle. Slices follow
// L (M), D (E) and F (S).
var turnGeometries = [numFaces]turnGeometry{
	FaceR: {0, []int{1}, -1},
	FaceL: {0, []int{-1}, 1},
	FaceU: {1, []int{1}, -1},
	FaceD: {1, []int{-1}, 1},
	FaceF: {2, []int{1}, -1},
	FaceB: {2, []int{-1}, 1},

	FaceM: {0, []int{0}, 1},
	FaceE: {1, []int{0}, 1},
	FaceS: {2, []int{0}, -1},

	FaceWideR: {0, []int{0, 1}, -1},
	FaceWideL: {0, []int{-1, 0}, 1},
	FaceWideU: {1, []int{0, 1}, -1},
	FaceWideD: {1, []int{-1, 0}, 1},
	FaceWideF: {2, []int{0, 1}, -1},
	FaceWideB: {2, []int{-1, 0}, 1},

	FaceX: {0, allLayers, -1},
	FaceY: {1, allLayers, -1},
	FaceZ: {2, allLayers, -1},
}

// Hint returns the geometry of a move.
func Hint(m Move) (GeometryHint, error) {
	if !m.Face.Valid() {
		return GeometryHint{}, fmt.Errorf("%w: face %d", ErrUnknownMove, int(m.Face))
	}
	g := turnGeometries[m.Face]

	var h GeometryHint
	switch g.axis {
	case 0:
		h.Axis = Vector{X: 1}
	case 1:
		h.Axis = Vector{Y: 1}
	case 2:
		h.Axis = Vector{Z: 1}
	}

	switch m.Turn() {
	case Double:
		h.Angle = g.sign * math.Pi
	case CCW:
		h.Angle = -g.sign * math.Pi / 2
	default:
		h.Angle = g.sign * math.Pi / 2
	}

	h.Layers = append([]int(nil), g.layers...)
	inLayer := func(p vec) bool {
		for _, l := range g.layers {
			if p[g.axis] == l {
				return true
			}
		}
		return false
	}
	for i := range cornerFacelets {
		if inLayer(cornerPosition(i)) {
			h.Corners = append(h.Corners, i)
		}
	}
	for i := range edgeFacelets {
		if inLayer(edgePosition(i)) {
			h.Edges = append(h.Edges, i)
		}
	}
	for f, n := range faceNormals {
		if inLayer(n) {
			h.Centers = append(h.Centers, CubeFace(f))
		}
	}
	return h, nil
}
