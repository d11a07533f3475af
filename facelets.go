package cubeplay

import "strings"

// Facelets is the sticker view of a cube as it is physically held.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// looking at the face from outside, with U viewed with B at the top, D
// viewed with F at the top, and the side faces viewed with U at the top.
type Facelets [6][9]Color

// stickerPosition returns the cubie position behind facelet idx of face f.
func stickerPosition(f CubeFace, idx int) vec {
	row, col := idx/3, idx%3
	switch f {
	case CubeFaceU:
		return vec{col - 1, 1, row - 1}
	case CubeFaceD:
		return vec{col - 1, -1, 1 - row}
	case CubeFaceF:
		return vec{col - 1, 1 - row, 1}
	case CubeFaceB:
		return vec{1 - col, 1 - row, -1}
	case CubeFaceR:
		return vec{1, 1 - row, 1 - col}
	default:
		return vec{-1, 1 - row, col - 1}
	}
}

// Facelets projects the state onto the 54 physical stickers.
func (s CubeState) Facelets() Facelets {
	// Physical axes expressed in the fixed frame.
	axes := [3]vec{
		faceNormals[homeFace(s.Centers[CubeFaceR])],
		faceNormals[homeFace(s.Centers[CubeFaceU])],
		faceNormals[homeFace(s.Centers[CubeFaceF])],
	}
	toFixed := func(v vec) vec {
		return axes[0].scale(v[0]).add(axes[1].scale(v[1])).add(axes[2].scale(v[2]))
	}

	var out Facelets
	for f := CubeFace(0); f < 6; f++ {
		normal, _ := faceOf(toFixed(faceNormals[f]))
		for idx := 0; idx < 9; idx++ {
			if idx == 4 {
				out[f][idx] = s.Centers[f]
				continue
			}
			out[f][idx] = s.stickerColor(toFixed(stickerPosition(f, idx)), normal)
		}
	}
	return out
}

// stickerColor returns the color showing on the fixed-frame face normal of
// the cubie at fixed-frame position p.
func (s CubeState) stickerColor(p vec, normal CubeFace) Color {
	if slot, ok := cornerAt(p); ok {
		k := indexOfFace(cornerFacelets[slot][:], normal)
		piece := s.CornerPermutation[slot]
		return solvedColor(cornerFacelets[piece][(k-s.CornerOrientation[slot]+3)%3])
	}
	if slot, ok := edgeAt(p); ok {
		k := indexOfFace(edgeFacelets[slot][:], normal)
		piece := s.EdgePermutation[slot]
		return solvedColor(edgeFacelets[piece][(k-s.EdgeOrientation[slot]+2)%2])
	}
	return 0
}

// IsUniform returns true if every face shows a single color.
func (f Facelets) IsUniform() bool {
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			if f[face][i] != f[face][4] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube.
func (f Facelets) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[CubeFaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(f[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[CubeFaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
