package cubeplay

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHint(t *testing.T) {
	tests := []struct {
		move Move
		want GeometryHint
	}{
		{R, GeometryHint{
			Axis:    Vector{X: 1},
			Angle:   -math.Pi / 2,
			Layers:  []int{1},
			Corners: []int{URF, UBR, DFR, DRB},
			Edges:   []int{UR, DR, FR, BR},
			Centers: []CubeFace{CubeFaceR},
		}},
		{M, GeometryHint{
			Axis:    Vector{X: 1},
			Angle:   math.Pi / 2,
			Layers:  []int{0},
			Edges:   []int{UF, UB, DF, DB},
			Centers: []CubeFace{CubeFaceU, CubeFaceD, CubeFaceF, CubeFaceB},
		}},
		{UPrime, GeometryHint{
			Axis:    Vector{Y: 1},
			Angle:   math.Pi / 2,
			Layers:  []int{1},
			Corners: []int{URF, UFL, ULB, UBR},
			Edges:   []int{UR, UF, UL, UB},
			Centers: []CubeFace{CubeFaceU},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.move.Notation(), func(t *testing.T) {
			got, err := Hint(tt.move)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hint(%v) mismatch (-want +got):\n%s", tt.move, diff)
			}
		})
	}
}

func TestHintAngles(t *testing.T) {
	tests := []struct {
		move  string
		angle float64
	}{
		{"R", -math.Pi / 2},
		{"R'", math.Pi / 2},
		{"R2", -math.Pi},
		{"L", math.Pi / 2},
		{"D'", -math.Pi / 2},
		{"B", math.Pi / 2},
		{"E", math.Pi / 2},
		{"S", -math.Pi / 2},
		{"x", -math.Pi / 2},
		{"r'", math.Pi / 2},
		{"l", math.Pi / 2},
	}

	for _, tt := range tests {
		m, err := ParseMove(tt.move)
		if err != nil {
			t.Fatal(err)
		}
		h, err := Hint(m)
		if err != nil {
			t.Fatal(err)
		}
		if h.Angle != tt.angle {
			t.Errorf("Hint(%s).Angle = %v, want %v", tt.move, h.Angle, tt.angle)
		}
	}
}

func TestHintLayerSizes(t *testing.T) {
	tests := []struct {
		face                   Face
		corners, edges, center int
	}{
		{FaceF, 4, 4, 1},
		{FaceS, 0, 4, 4},
		{FaceWideU, 4, 8, 5},
		{FaceZ, 8, 12, 6},
	}

	for _, tt := range tests {
		h, err := Hint(Move{Face: tt.face})
		if err != nil {
			t.Fatal(err)
		}
		if len(h.Corners) != tt.corners || len(h.Edges) != tt.edges || len(h.Centers) != tt.center {
			t.Errorf("%v turns %d corners, %d edges, %d centers", tt.face, len(h.Corners), len(h.Edges), len(h.Centers))
		}
	}
}

func TestHintUnknownFace(t *testing.T) {
	if _, err := Hint(Move{Face: numFaces}); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}
}

func TestApplyMoveReturnsHint(t *testing.T) {
	c := New()
	h, err := c.ApplyMove(Move{Face: FaceWideR, Double: true})
	if err != nil {
		t.Fatal(err)
	}
	if h.Angle != -math.Pi || len(h.Layers) != 2 {
		t.Errorf("r2 hint = %+v", h)
	}
}
