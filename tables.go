package cubeplay

import "fmt"

// moveTable describes one move in the fixed frame. A piece in slot i moves
// to slot cornerMap[i] (edgeMap[i]); the twist and flip deltas are indexed
// by destination slot and added after permuting.
type moveTable struct {
	cornerMap   [8]int
	cornerTwist [8]int
	edgeMap     [12]int
	edgeFlip    [12]int
}

// centerMap sends the center at physical slot f to slot m[f].
type centerMap [6]int

var (
	// tables is indexed by fixed-frame face and Turn.index().
	tables [numFaces][3]moveTable

	// centerTurns is indexed by physical face and Turn.index(). Face turns
	// leave the centers alone; everything that turns the middle layer
	// reorients the cube.
	centerTurns [numFaces][3]centerMap
)

func init() {
	buildTables()
	if err := validateTables(); err != nil {
		panic(err)
	}
}

func identityTable() moveTable {
	var t moveTable
	for i := range t.cornerMap {
		t.cornerMap[i] = i
	}
	for i := range t.edgeMap {
		t.edgeMap[i] = i
	}
	return t
}

// quarterTable derives the clockwise quarter turn of one outer face from
// the slot facelets.
func quarterTable(face CubeFace) moveTable {
	t := identityTable()

	for i, facelets := range cornerFacelets {
		if indexOfFace(facelets[:], face) < 0 {
			continue
		}
		var turned [3]CubeFace
		for k, f := range facelets {
			turned[k] = turnFace(face, f)
		}
		j, twist, ok := matchCorner(turned)
		if !ok {
			panic(fmt.Sprintf("cubeplay: %v turn sends corner %d to no slot", face, i))
		}
		t.cornerMap[i] = j
		t.cornerTwist[j] = twist
	}

	for i, facelets := range edgeFacelets {
		if indexOfFace(facelets[:], face) < 0 {
			continue
		}
		var turned [2]CubeFace
		for k, f := range facelets {
			turned[k] = turnFace(face, f)
		}
		j, flip, ok := matchEdge(turned)
		if !ok {
			panic(fmt.Sprintf("cubeplay: %v turn sends edge %d to no slot", face, i))
		}
		t.edgeMap[i] = j
		t.edgeFlip[j] = flip
	}

	return t
}

// matchCorner finds the slot holding the rotated facelets and the index at
// which the reference facelet landed. The cyclic order must match.
func matchCorner(turned [3]CubeFace) (slot, twist int, ok bool) {
	for j, fl := range cornerFacelets {
		d := indexOfFace(fl[:], turned[0])
		if d < 0 {
			continue
		}
		if fl[(d+1)%3] == turned[1] && fl[(d+2)%3] == turned[2] {
			return j, d, true
		}
	}
	return 0, 0, false
}

func matchEdge(turned [2]CubeFace) (slot, flip int, ok bool) {
	for j, fl := range edgeFacelets {
		d := indexOfFace(fl[:], turned[0])
		if d < 0 {
			continue
		}
		if fl[(d+1)%2] == turned[1] {
			return j, d, true
		}
	}
	return 0, 0, false
}

// then returns the table for t followed by next.
func (t moveTable) then(next moveTable) moveTable {
	var out moveTable
	for i := range t.cornerMap {
		mid := t.cornerMap[i]
		dst := next.cornerMap[mid]
		out.cornerMap[i] = dst
		out.cornerTwist[dst] = (t.cornerTwist[mid] + next.cornerTwist[dst]) % 3
	}
	for i := range t.edgeMap {
		mid := t.edgeMap[i]
		dst := next.edgeMap[mid]
		out.edgeMap[i] = dst
		out.edgeFlip[dst] = (t.edgeFlip[mid] + next.edgeFlip[dst]) % 2
	}
	return out
}

func (t moveTable) pow(n int) moveTable {
	out := identityTable()
	for i := 0; i < n; i++ {
		out = out.then(t)
	}
	return out
}

func identityCenters() centerMap {
	var m centerMap
	for i := range m {
		m[i] = i
	}
	return m
}

func centerQuarter(axis CubeFace) centerMap {
	var m centerMap
	for f := range m {
		m[f] = int(turnFace(axis, CubeFace(f)))
	}
	return m
}

func (m centerMap) then(next centerMap) centerMap {
	var out centerMap
	for i := range m {
		out[i] = next[m[i]]
	}
	return out
}

func (m centerMap) pow(n int) centerMap {
	out := identityCenters()
	for i := 0; i < n; i++ {
		out = out.then(m)
	}
	return out
}

// cubeRotation is the whole-cube component of a move: a number of
// clockwise quarter turns about a face axis.
type cubeRotation struct {
	axis     CubeFace
	quarters int
}

// rotations lists the whole-cube component of every move that turns the
// middle layer. Wide moves are the opposite face plus a rotation (r = L x),
// slices are two face turns plus a rotation (M = R L' x').
var rotations = map[Face]cubeRotation{
	FaceX: {CubeFaceR, 1}, FaceWideR: {CubeFaceR, 1}, FaceWideL: {CubeFaceR, 3}, FaceM: {CubeFaceR, 3},
	FaceY: {CubeFaceU, 1}, FaceWideU: {CubeFaceU, 1}, FaceWideD: {CubeFaceU, 3}, FaceE: {CubeFaceU, 3},
	FaceZ: {CubeFaceF, 1}, FaceWideF: {CubeFaceF, 1}, FaceWideB: {CubeFaceF, 3}, FaceS: {CubeFaceF, 1},
}

func buildTables() {
	q := func(f CubeFace) moveTable { return quarterTable(f) }

	base := [numFaces]moveTable{
		FaceR: q(CubeFaceR),
		FaceL: q(CubeFaceL),
		FaceU: q(CubeFaceU),
		FaceD: q(CubeFaceD),
		FaceF: q(CubeFaceF),
		FaceB: q(CubeFaceB),

		FaceM: q(CubeFaceR).then(q(CubeFaceL).pow(3)),
		FaceE: q(CubeFaceU).then(q(CubeFaceD).pow(3)),
		FaceS: q(CubeFaceF).pow(3).then(q(CubeFaceB)),

		FaceWideR: q(CubeFaceL),
		FaceWideL: q(CubeFaceR),
		FaceWideU: q(CubeFaceD),
		FaceWideD: q(CubeFaceU),
		FaceWideF: q(CubeFaceB),
		FaceWideB: q(CubeFaceF),

		FaceX: identityTable(),
		FaceY: identityTable(),
		FaceZ: identityTable(),
	}

	for f := Face(0); f < numFaces; f++ {
		tables[f][CW.index()] = base[f]
		tables[f][CCW.index()] = base[f].pow(3)
		tables[f][Double.index()] = base[f].pow(2)

		rot, ok := rotations[f]
		if !ok {
			for t := range centerTurns[f] {
				centerTurns[f][t] = identityCenters()
			}
			continue
		}
		quarter := centerQuarter(rot.axis)
		centerTurns[f][CW.index()] = quarter.pow(rot.quarters % 4)
		centerTurns[f][CCW.index()] = quarter.pow((rot.quarters * 3) % 4)
		centerTurns[f][Double.index()] = quarter.pow((rot.quarters * 2) % 4)
	}
}

// validateTables checks every row once at startup.
func validateTables() error {
	identity := identityTable()

	for f := Face(0); f < numFaces; f++ {
		for ti, t := range tables[f] {
			if !isPermutation(t.cornerMap[:]) || !isPermutation(t.edgeMap[:]) {
				return fmt.Errorf("cubeplay: table %v/%d is not a permutation", f, ti)
			}
			twist, flip := 0, 0
			for _, d := range t.cornerTwist {
				if d < 0 || d > 2 {
					return fmt.Errorf("cubeplay: table %v/%d twist out of range", f, ti)
				}
				twist += d
			}
			for _, d := range t.edgeFlip {
				if d < 0 || d > 1 {
					return fmt.Errorf("cubeplay: table %v/%d flip out of range", f, ti)
				}
				flip += d
			}
			if twist%3 != 0 || flip%2 != 0 {
				return fmt.Errorf("cubeplay: table %v/%d changes orientation parity", f, ti)
			}
			if ti == Double.index() && (twist != 0 || flip != 0) {
				return fmt.Errorf("cubeplay: half turn %v changes orientation", f)
			}
		}

		cw, ccw := tables[f][CW.index()], tables[f][CCW.index()]
		if cw.pow(4) != identity {
			return fmt.Errorf("cubeplay: %v does not have order 4", f)
		}
		if cw.then(ccw) != identity {
			return fmt.Errorf("cubeplay: %v' does not undo %v", f, f)
		}

		for ti, m := range centerTurns[f] {
			if !isPermutation(m[:]) {
				return fmt.Errorf("cubeplay: center map %v/%d is not a permutation", f, ti)
			}
		}
	}
	return nil
}
