package cubeplay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTablesValidate(t *testing.T) {
	if err := validateTables(); err != nil {
		t.Fatal(err)
	}
}

func TestRQuarterTurn(t *testing.T) {
	r := tables[FaceR][CW.index()]

	wantCorners := [8]int{URF: UBR, UFL: UFL, ULB: ULB, UBR: DRB, DFR: URF, DLF: DLF, DBL: DBL, DRB: DFR}
	if diff := cmp.Diff(wantCorners, r.cornerMap); diff != "" {
		t.Errorf("R corner map (-want +got):\n%s", diff)
	}
	wantTwist := [8]int{URF: 2, UBR: 1, DFR: 1, DRB: 2}
	if diff := cmp.Diff(wantTwist, r.cornerTwist); diff != "" {
		t.Errorf("R corner twist (-want +got):\n%s", diff)
	}

	wantEdges := [12]int{UR: BR, UF: UF, UL: UL, UB: UB, DR: FR, DF: DF, DL: DL, DB: DB, FR: UR, FL: FL, BL: BL, BR: DR}
	if diff := cmp.Diff(wantEdges, r.edgeMap); diff != "" {
		t.Errorf("R edge map (-want +got):\n%s", diff)
	}
	if r.edgeFlip != [12]int{} {
		t.Errorf("R should not flip edges, got %v", r.edgeFlip)
	}
}

func TestOnlyFrontAndBackFlipEdges(t *testing.T) {
	for f := FaceR; f <= FaceB; f++ {
		flips := 0
		for _, d := range tables[f][CW.index()].edgeFlip {
			flips += d
		}
		want := 0
		if f == FaceF || f == FaceB {
			want = 4
		}
		if flips != want {
			t.Errorf("%v flips %d edges, want %d", f, flips, want)
		}
	}
}

func TestOnlyUpAndDownKeepTwist(t *testing.T) {
	for f := FaceR; f <= FaceB; f++ {
		twisted := 0
		for _, d := range tables[f][CW.index()].cornerTwist {
			if d != 0 {
				twisted++
			}
		}
		want := 4
		if f == FaceU || f == FaceD {
			want = 0
		}
		if twisted != want {
			t.Errorf("%v twists %d corners, want %d", f, twisted, want)
		}
	}
}

func TestCenterTurns(t *testing.T) {
	// x carries the top center to the back.
	x := centerTurns[FaceX][CW.index()]
	if CubeFace(x[CubeFaceU]) != CubeFaceB || CubeFace(x[CubeFaceF]) != CubeFaceU {
		t.Errorf("x center map = %v", x)
	}

	for _, f := range []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB} {
		for ti, m := range centerTurns[f] {
			if m != identityCenters() {
				t.Errorf("%v/%d should not move centers", f, ti)
			}
		}
	}

	same := [][2]Face{{FaceX, FaceWideR}, {FaceY, FaceWideU}, {FaceZ, FaceWideF}, {FaceZ, FaceS}}
	for _, p := range same {
		if centerTurns[p[0]] != centerTurns[p[1]] {
			t.Errorf("%v and %v should rotate centers alike", p[0], p[1])
		}
	}
}
