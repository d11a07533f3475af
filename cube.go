package cubeplay

import (
	"github.com/sirupsen/logrus"
)

// Cube owns one CubeState and is the only thing that mutates it.
// A Cube is not safe for concurrent use; Player serializes access.
type Cube struct {
	state CubeState
	log   *logrus.Logger
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New(opts ...Option) *Cube {
	cfg := newConfig(opts)
	return &Cube{
		state: Solved(),
		log:   cfg.logger,
	}
}

// State returns a snapshot of the cube state.
func (c *Cube) State() CubeState {
	return c.state
}

// Reset restores the solved state.
func (c *Cube) Reset() {
	c.state = Solved()
}

// IsSolved returns true if every piece is home, in any orientation.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// ApplyMove applies a move given in the cube's physical frame and returns
// the geometry a renderer needs to animate it. On error the state is
// unchanged.
func (c *Cube) ApplyMove(m Move) (GeometryHint, error) {
	hint, err := Hint(m)
	if err != nil {
		return GeometryHint{}, err
	}
	next, err := Apply(c.state, m)
	if err != nil {
		return GeometryHint{}, err
	}
	c.state = next

	c.log.WithFields(logrus.Fields{
		"move":  m.Notation(),
		"up":    next.UpColor().String(),
		"front": next.FrontColor().String(),
	}).Trace("move applied")

	return hint, nil
}

// ApplyMoves applies moves in order, stopping at the first error.
func (c *Cube) ApplyMoves(moves ...Move) error {
	for _, m := range moves {
		if _, err := c.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses a move script and applies it. Nothing is applied
// if the script does not parse.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.ApplyMoves(moves...)
}

// Facelets returns the sticker view of the cube as currently held.
func (c *Cube) Facelets() Facelets {
	return c.state.Facelets()
}

// String returns the unfolded sticker net.
func (c *Cube) String() string {
	return c.Facelets().String()
}

// Apply returns the state after applying m to s.
//
// The move is normalized, resolved from the physical frame into the fixed
// frame, and looked up in the permutation tables. A piece in slot i moves
// to slot map[i] with its orientation; twist and flip deltas are then added
// unless the move is a half turn. Moves that turn the middle layer also
// rotate the centers.
func Apply(s CubeState, m Move) (CubeState, error) {
	m = m.Normalize()
	fixed, err := resolve(s.Centers, m)
	if err != nil {
		return s, err
	}
	t := tables[fixed.Face][fixed.Turn().index()]

	next := s
	for i := 0; i < 8; i++ {
		next.CornerPermutation[t.cornerMap[i]] = s.CornerPermutation[i]
		next.CornerOrientation[t.cornerMap[i]] = s.CornerOrientation[i]
	}
	for i := 0; i < 12; i++ {
		next.EdgePermutation[t.edgeMap[i]] = s.EdgePermutation[i]
		next.EdgeOrientation[t.edgeMap[i]] = s.EdgeOrientation[i]
	}

	if !fixed.Double {
		for i := range next.CornerOrientation {
			next.CornerOrientation[i] = (next.CornerOrientation[i] + t.cornerTwist[i]) % 3
		}
		for i := range next.EdgeOrientation {
			next.EdgeOrientation[i] = (next.EdgeOrientation[i] + t.edgeFlip[i]) % 2
		}
	}

	cm := centerTurns[m.Face][m.Turn().index()]
	for f := range s.Centers {
		next.Centers[cm[f]] = s.Centers[f]
	}

	return next, nil
}

// ApplySequence applies moves to s in order.
func ApplySequence(s CubeState, moves []Move) (CubeState, error) {
	for _, m := range moves {
		var err error
		if s, err = Apply(s, m); err != nil {
			return s, err
		}
	}
	return s, nil
}
