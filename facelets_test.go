package cubeplay

import (
	"strings"
	"testing"
)

func faceletsAfter(t *testing.T, script string) Facelets {
	t.Helper()
	return mustApply(t, Solved(), script).Facelets()
}

func checkStickers(t *testing.T, f Facelets, face CubeFace, idx []int, want Color) {
	t.Helper()
	for _, i := range idx {
		if got := f[face][i]; got != want {
			t.Errorf("%v[%d] = %v, want %v", face, i, got, want)
		}
	}
}

func TestSolvedFacelets(t *testing.T) {
	f := Solved().Facelets()
	if !f.IsUniform() {
		t.Error("solved cube should be uniform")
	}
	for face := CubeFace(0); face < 6; face++ {
		if f[face][0] != solvedColor(face) {
			t.Errorf("%v shows %v", face, f[face][0])
		}
	}
}

func TestFaceletsAfterR(t *testing.T) {
	f := faceletsAfter(t, "R")
	right := []int{2, 5, 8}
	left := []int{0, 3, 6}

	checkStickers(t, f, CubeFaceU, right, Green)
	checkStickers(t, f, CubeFaceU, left, White)
	checkStickers(t, f, CubeFaceF, right, Yellow)
	checkStickers(t, f, CubeFaceD, right, Blue)
	checkStickers(t, f, CubeFaceB, left, White)
	checkStickers(t, f, CubeFaceR, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Red)
	checkStickers(t, f, CubeFaceL, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Orange)
	if t.Failed() {
		t.Log(f)
	}
}

func TestFaceletsAfterM(t *testing.T) {
	f := faceletsAfter(t, "M")
	checkStickers(t, f, CubeFaceU, []int{1, 4, 7}, Blue)
	checkStickers(t, f, CubeFaceU, []int{0, 3, 6, 2, 5, 8}, White)
	checkStickers(t, f, CubeFaceF, []int{1, 4, 7}, White)
	checkStickers(t, f, CubeFaceF, []int{0, 2}, Green)
	if t.Failed() {
		t.Log(f)
	}
}

func TestFaceletsAfterRotation(t *testing.T) {
	f := faceletsAfter(t, "x")
	if !f.IsUniform() {
		t.Fatal("rotated solved cube should be uniform")
	}
	want := map[CubeFace]Color{
		CubeFaceU: Green,
		CubeFaceF: Yellow,
		CubeFaceD: Blue,
		CubeFaceB: White,
		CubeFaceR: Red,
		CubeFaceL: Orange,
	}
	for face, c := range want {
		if f[face][0] != c {
			t.Errorf("after x, %v shows %v, want %v", face, f[face][0], c)
		}
	}
}

func TestRotatedMoveMatchesPlainMove(t *testing.T) {
	// Turning the physical U after x looks like F on an upright cube
	// viewed from above.
	rotated := faceletsAfter(t, "x U x'")
	plain := faceletsAfter(t, "F")
	if rotated != plain {
		t.Error("x U x' should look like F")
		t.Log(rotated)
		t.Log(plain)
	}
}

func TestEveryColorAppearsNineTimes(t *testing.T) {
	f := faceletsAfter(t, "R U' F2 l' M E' x S d2 b")
	var counts [numColors]int
	for face := range f {
		for _, c := range f[face] {
			counts[c]++
		}
	}
	for c, n := range counts {
		if n != 9 {
			t.Errorf("color %v appears %d times", Color(c), n)
		}
	}
}

func TestFaceletsString(t *testing.T) {
	s := Solved().Facelets().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9:\n%s", len(lines), s)
	}
	if !strings.HasPrefix(lines[0], "      W W W") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[4] != "O O O G G G R R R B B B " {
		t.Errorf("middle line = %q", lines[4])
	}
}
