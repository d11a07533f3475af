package cubeplay

// vec is an integer vector in the cube's coordinate system:
// +x right, +y up, +z front. Cubie centers sit on {-1,0,1}^3.
type vec [3]int

func (a vec) add(b vec) vec {
	return vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a vec) scale(k int) vec {
	return vec{a[0] * k, a[1] * k, a[2] * k}
}

func (a vec) dot(b vec) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec) cross(b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// faceNormals is the outward normal of each face slot.
var faceNormals = [6]vec{
	CubeFaceU: {0, 1, 0},
	CubeFaceD: {0, -1, 0},
	CubeFaceF: {0, 0, 1},
	CubeFaceB: {0, 0, -1},
	CubeFaceR: {1, 0, 0},
	CubeFaceL: {-1, 0, 0},
}

// faceOf returns the face whose normal is n. The second result is false
// when n is not a unit axis vector.
func faceOf(n vec) (CubeFace, bool) {
	for f, fn := range faceNormals {
		if fn == n {
			return CubeFace(f), true
		}
	}
	return 0, false
}

// quarterTurn rotates v a quarter turn clockwise as seen looking at face
// from outside the cube: -90 degrees about its normal n, which for unit
// axes reduces to n(n.v) - n x v.
func quarterTurn(face CubeFace, v vec) vec {
	n := faceNormals[face]
	return n.scale(n.dot(v)).add(n.cross(v).scale(-1))
}

// turnFace rotates a face slot a quarter turn about axis.
func turnFace(axis, f CubeFace) CubeFace {
	out, ok := faceOf(quarterTurn(axis, faceNormals[f]))
	if !ok {
		panic("cubeplay: quarter turn left the axis set")
	}
	return out
}

// Corner slots. Facelets start with the U or D facelet and run clockwise
// seen from outside the corner.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

var cornerFacelets = [8][3]CubeFace{
	URF: {CubeFaceU, CubeFaceR, CubeFaceF},
	UFL: {CubeFaceU, CubeFaceF, CubeFaceL},
	ULB: {CubeFaceU, CubeFaceL, CubeFaceB},
	UBR: {CubeFaceU, CubeFaceB, CubeFaceR},
	DFR: {CubeFaceD, CubeFaceF, CubeFaceR},
	DLF: {CubeFaceD, CubeFaceL, CubeFaceF},
	DBL: {CubeFaceD, CubeFaceB, CubeFaceL},
	DRB: {CubeFaceD, CubeFaceR, CubeFaceB},
}

// Edge slots. Facelets start with the U or D facelet, or the F or B
// facelet for middle-layer edges.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

var edgeFacelets = [12][2]CubeFace{
	UR: {CubeFaceU, CubeFaceR},
	UF: {CubeFaceU, CubeFaceF},
	UL: {CubeFaceU, CubeFaceL},
	UB: {CubeFaceU, CubeFaceB},
	DR: {CubeFaceD, CubeFaceR},
	DF: {CubeFaceD, CubeFaceF},
	DL: {CubeFaceD, CubeFaceL},
	DB: {CubeFaceD, CubeFaceB},
	FR: {CubeFaceF, CubeFaceR},
	FL: {CubeFaceF, CubeFaceL},
	BL: {CubeFaceB, CubeFaceL},
	BR: {CubeFaceB, CubeFaceR},
}

// slotPosition returns the cubie center of a slot given its facelets.
func slotPosition(facelets []CubeFace) vec {
	var p vec
	for _, f := range facelets {
		p = p.add(faceNormals[f])
	}
	return p
}

func cornerPosition(i int) vec {
	return slotPosition(cornerFacelets[i][:])
}

func edgePosition(i int) vec {
	return slotPosition(edgeFacelets[i][:])
}

// cornerAt returns the corner slot at position p.
func cornerAt(p vec) (int, bool) {
	for i := range cornerFacelets {
		if cornerPosition(i) == p {
			return i, true
		}
	}
	return 0, false
}

// edgeAt returns the edge slot at position p.
func edgeAt(p vec) (int, bool) {
	for i := range edgeFacelets {
		if edgePosition(i) == p {
			return i, true
		}
	}
	return 0, false
}

func indexOfFace(list []CubeFace, f CubeFace) int {
	for i, g := range list {
		if g == f {
			return i
		}
	}
	return -1
}
