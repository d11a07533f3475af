package cubeplay

import (
	"errors"
	"testing"
)

func TestRightNeighborMatchesGeometry(t *testing.T) {
	for up := Color(0); up < numColors; up++ {
		for front := Color(0); front < numColors; front++ {
			got := rightNeighbor[up][front]
			if up == front || up == oppositeColor(front) {
				if got != noColor {
					t.Errorf("rightNeighbor[%v][%v] = %v, want none", up, front, got)
				}
				continue
			}
			right, ok := faceOf(faceNormals[homeFace(up)].cross(faceNormals[homeFace(front)]))
			if !ok {
				t.Fatalf("no face to the right of %v/%v", up, front)
			}
			if want := solvedColor(right); got != want {
				t.Errorf("rightNeighbor[%v][%v] = %v, want %v", up, front, got, want)
			}
		}
	}
}

// reachableOrientations walks x and y rotations from the solved cube.
func reachableOrientations(t *testing.T) map[[6]Color]CubeState {
	t.Helper()
	seen := map[[6]Color]CubeState{Solved().Centers: Solved()}
	queue := []CubeState{Solved()}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, m := range []Move{X, Y} {
			next, err := Apply(s, m)
			if err != nil {
				t.Fatal(err)
			}
			if _, ok := seen[next.Centers]; !ok {
				seen[next.Centers] = next
				queue = append(queue, next)
			}
		}
	}
	return seen
}

func TestAllOrientationsResolve(t *testing.T) {
	states := reachableOrientations(t)
	if len(states) != 24 {
		t.Fatalf("found %d orientations, want 24", len(states))
	}

	for _, s := range states {
		if _, err := orientationOf(s.Centers); err != nil {
			t.Errorf("centers %v: %v", s.Centers, err)
		}
		for _, m := range AllMoves() {
			fixed, err := resolve(s.Centers, m)
			if err != nil {
				t.Fatalf("resolve %v with centers %v: %v", m, s.Centers, err)
			}
			if fixed.Face.IsSlice() != m.Face.IsSlice() || fixed.Face.IsWide() != m.Face.IsWide() {
				t.Errorf("%v resolved to %v with centers %v", m, fixed, s.Centers)
			}
			if (fixed.Turn() == Double) != (m.Turn() == Double) {
				t.Errorf("%v resolved to %v changes magnitude", m, fixed)
			}
		}
	}
}

func TestResolveFaceMoves(t *testing.T) {
	tests := []struct {
		setup string
		move  Move
		want  Move
	}{
		{"", R, R},
		{"x", U, F},
		{"x", F, D},
		{"z'", U, R},
		{"y", R, B},
		{"y", Move{Face: FaceWideR, Prime: true}, Move{Face: FaceWideB, Prime: true}},
		{"y2", M, MPrime},
		{"x", E, SPrime},
		{"z", E, MPrime},
		{"y", S, Move{Face: FaceM, Prime: true}},
		{"", Move{Face: FaceS, Prime: true, Double: true}, Move{Face: FaceS, Double: true}},
		{"x", X, X},
	}

	for _, tt := range tests {
		s := mustApply(t, Solved(), tt.setup)
		got, err := resolve(s.Centers, tt.move)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("after %q, %v resolved to %v, want %v", tt.setup, tt.move, got, tt.want)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := resolve(Solved().Centers, Move{Face: -1}); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}

	centers := Solved().Centers
	centers[CubeFaceU] = Green
	if _, err := resolve(centers, R); !errors.Is(err, ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
}
