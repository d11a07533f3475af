package cubeplay

import "fmt"

const noColor Color = 0xFF

// rightNeighbor[up][front] is the color of the right face for a cube held
// with the given up and front centers. Pairs that cannot share an edge
// (equal or opposite colors) hold noColor.
var rightNeighbor = [numColors][numColors]Color{
	White:  {noColor, noColor, Red, Orange, Blue, Green},
	Yellow: {noColor, noColor, Orange, Red, Green, Blue},
	Green:  {Orange, Red, noColor, noColor, White, Yellow},
	Blue:   {Red, Orange, noColor, noColor, Yellow, White},
	Red:    {Green, Blue, Yellow, White, noColor, noColor},
	Orange: {Blue, Green, White, Yellow, noColor, noColor},
}

// fixedFaceMap gives the fixed-frame face turned when the physical face
// showing a center color is turned.
var fixedFaceMap = [numColors]Face{
	White:  FaceU,
	Yellow: FaceD,
	Green:  FaceF,
	Blue:   FaceB,
	Red:    FaceR,
	Orange: FaceL,
}

var fixedFaceMapWide = [numColors]Face{
	White:  FaceWideU,
	Yellow: FaceWideD,
	Green:  FaceWideF,
	Blue:   FaceWideB,
	Red:    FaceWideR,
	Orange: FaceWideL,
}

// physicalFaces is the face slot a face or wide move is named after.
var physicalFaces = map[Face]CubeFace{
	FaceR: CubeFaceR, FaceWideR: CubeFaceR,
	FaceL: CubeFaceL, FaceWideL: CubeFaceL,
	FaceU: CubeFaceU, FaceWideU: CubeFaceU,
	FaceD: CubeFaceD, FaceWideD: CubeFaceD,
	FaceF: CubeFaceF, FaceWideF: CubeFaceF,
	FaceB: CubeFaceB, FaceWideB: CubeFaceB,
}

func oppositeColor(c Color) Color {
	return solvedColor(homeFace(c).opposite())
}

// orientation is the center color at every physical face slot.
type orientation [6]Color

// orientationOf rebuilds the full orientation from the up and front
// centers and checks it against the stored centers.
func orientationOf(centers [6]Color) (orientation, error) {
	up, front := centers[CubeFaceU], centers[CubeFaceF]
	if up >= numColors || front >= numColors {
		return orientation{}, fmt.Errorf("%w: unknown center color", ErrCorruptState)
	}
	right := rightNeighbor[up][front]
	if right == noColor {
		return orientation{}, fmt.Errorf("%w: %v up with %v front", ErrCorruptState, up, front)
	}

	var o orientation
	o[CubeFaceU] = up
	o[CubeFaceD] = oppositeColor(up)
	o[CubeFaceF] = front
	o[CubeFaceB] = oppositeColor(front)
	o[CubeFaceR] = right
	o[CubeFaceL] = oppositeColor(right)

	if o != orientation(centers) {
		return orientation{}, fmt.Errorf("%w: centers %v disagree with %v up, %v front", ErrCorruptState, centers, up, front)
	}
	return o, nil
}

// resolve rewrites a move given in the cube's physical frame into the fixed
// frame the permutation tables use. Whole-cube rotations pass through.
func resolve(centers [6]Color, m Move) (Move, error) {
	if !m.Face.Valid() {
		return Move{}, fmt.Errorf("%w: face %d", ErrUnknownMove, int(m.Face))
	}
	if m.Face.IsRotation() {
		return m, nil
	}

	o, err := orientationOf(centers)
	if err != nil {
		return Move{}, err
	}

	switch m.Face {
	case FaceM:
		return resolveM(o, m), nil
	case FaceE:
		return resolveE(o, m), nil
	case FaceS:
		return resolveS(o, m), nil
	}

	color := o[physicalFaces[m.Face]]
	if m.Face.IsWide() {
		m.Face = fixedFaceMapWide[color]
	} else {
		m.Face = fixedFaceMap[color]
	}
	return m, nil
}

// resolveM: M turns with the physical left face.
func resolveM(o orientation, m Move) Move {
	return sliceFollowing(homeFace(o[CubeFaceL]), m)
}

// resolveE: E turns with the physical down face.
func resolveE(o orientation, m Move) Move {
	return sliceFollowing(homeFace(o[CubeFaceD]), m)
}

// resolveS: S turns with the physical front face.
func resolveS(o orientation, m Move) Move {
	return sliceFollowing(homeFace(o[CubeFaceF]), m)
}

// sliceFollowing returns the fixed-frame slice that turns the same way as
// the fixed face f. M follows L, E follows D and S follows F; following
// the opposite face reverses the direction.
func sliceFollowing(f CubeFace, m Move) Move {
	switch f {
	case CubeFaceL:
		m.Face = FaceM
	case CubeFaceR:
		m.Face, m.Prime = FaceM, !m.Prime
	case CubeFaceD:
		m.Face = FaceE
	case CubeFaceU:
		m.Face, m.Prime = FaceE, !m.Prime
	case CubeFaceF:
		m.Face = FaceS
	case CubeFaceB:
		m.Face, m.Prime = FaceS, !m.Prime
	}
	return m.Normalize()
}
