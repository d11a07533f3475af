package cubeplay

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// PlayerState is what a Player is currently doing.
type PlayerState int

const (
	Idle PlayerState = iota
	PlayingForward
	PlayingBackward
	SteppingOne
)

// String returns the string representation of the player state.
func (s PlayerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case PlayingForward:
		return "playing"
	case PlayingBackward:
		return "rewinding"
	case SteppingOne:
		return "stepping"
	default:
		return "unknown"
	}
}

// Direction is the way the cursor moves through the sequence.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// MoveEvent describes one move a Player has committed.
type MoveEvent struct {
	Index     int  // Position of the move in the sequence, -1 for a loose move
	Move      Move // Move as applied; inverted when going backward
	Direction Direction
	Cursor    int // Cursor after the move
	Hint      GeometryHint
}

// Pacer is called after every move a Player commits while stepping or
// playing. It typically blocks for the length of the turn animation. A
// non-nil error stops playback after the current move; the move itself is
// never rolled back. ctx is canceled when the Player is canceled.
type Pacer func(ctx context.Context, ev MoveEvent) error

// Player holds a parsed move sequence and a cursor into it, and steps a
// Cube forwards and backwards through the sequence.
//
// Only one step or play operation runs at a time; others fail with ErrBusy
// until it returns. Cancel stops a running operation at the next move
// boundary.
type Player struct {
	mu     sync.Mutex
	cube   *Cube
	moves  []Move
	cursor int
	status PlayerState
	stop   context.CancelFunc

	pacer  Pacer
	onMove func(MoveEvent)
	log    *logrus.Logger
}

// NewPlayer creates a player over a solved cube with an empty sequence.
func NewPlayer(opts ...Option) *Player {
	cfg := newConfig(opts)
	return &Player{
		cube:  New(opts...),
		pacer: cfg.pacer,
		log:   cfg.logger,
	}
}

// SetMoveCallback sets a callback fired after every committed move.
func (p *Player) SetMoveCallback(cb func(MoveEvent)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onMove = cb
}

// LoadSequence parses text and replaces the sequence, moving the cursor to
// the start. The cube itself is not touched. On a parse error the previous
// sequence and cursor are kept.
func (p *Player) LoadSequence(text string) (int, error) {
	moves, err := ParseMoves(text)
	if err != nil {
		p.log.WithError(err).Debug("sequence rejected")
		return 0, err
	}
	if err := p.LoadMoves(moves); err != nil {
		return 0, err
	}
	return len(moves), nil
}

// LoadMoves replaces the sequence with a copy of moves.
func (p *Player) LoadMoves(moves []Move) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != Idle {
		return ErrBusy
	}
	p.moves = append([]Move(nil), moves...)
	p.cursor = 0

	p.log.WithField("moves", len(p.moves)).Debug("sequence loaded")
	return nil
}

// State returns a snapshot of the cube state.
func (p *Player) State() CubeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cube.State()
}

// Cursor returns the number of sequence moves currently applied.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// MoveCount returns the length of the loaded sequence.
func (p *Player) MoveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.moves)
}

// Moves returns a copy of the loaded sequence.
func (p *Player) Moves() []Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Move(nil), p.moves...)
}

// Status returns what the player is doing.
func (p *Player) Status() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// ApplyMove applies a single move outside the sequence, for example one
// typed by the user. The cursor does not change. The move callback fires
// with Index -1; the pacer is not called.
func (p *Player) ApplyMove(m Move) (GeometryHint, error) {
	p.mu.Lock()
	if p.status != Idle {
		p.mu.Unlock()
		return GeometryHint{}, ErrBusy
	}
	hint, err := p.cube.ApplyMove(m)
	if err != nil {
		p.mu.Unlock()
		return GeometryHint{}, err
	}
	ev := MoveEvent{
		Index:     -1,
		Move:      m,
		Direction: Forward,
		Cursor:    p.cursor,
		Hint:      hint,
	}
	cb := p.onMove
	p.mu.Unlock()

	p.log.WithField("move", m.Notation()).Debug("loose move applied")
	if cb != nil {
		cb(ev)
	}
	return hint, nil
}

// Reset restores the solved cube and moves the cursor to the start.
func (p *Player) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != Idle {
		return ErrBusy
	}
	p.cube.Reset()
	p.cursor = 0

	p.log.Debug("cube reset")
	return nil
}

// Cancel stops the running operation once the current move is committed.
// It does nothing when the player is idle.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		p.stop()
	}
}

// StepForward applies the move under the cursor and advances it.
// At the end of the sequence it returns ErrIndexOutOfRange and does
// nothing.
func (p *Player) StepForward(ctx context.Context) error {
	ctx, err := p.begin(ctx, SteppingOne, nil)
	if err != nil {
		return err
	}
	defer p.finish()
	return p.advance(ctx, Forward, true)
}

// StepBackward moves the cursor back and applies the inverse of the move
// it passes. At the start of the sequence it returns ErrIndexOutOfRange and
// does nothing.
func (p *Player) StepBackward(ctx context.Context) error {
	ctx, err := p.begin(ctx, SteppingOne, nil)
	if err != nil {
		return err
	}
	defer p.finish()
	return p.advance(ctx, Backward, true)
}

// PlayRange moves the cursor from start to end one move at a time, going
// backward with inverted moves when end < start. If the cursor is not at
// start it is first moved there without pacing. Those moves still fire the
// move callback. Status reports the direction of the leg being played.
// Cancellation is checked between moves.
func (p *Player) PlayRange(ctx context.Context, start, end int) error {
	state := PlayingForward
	if end < start {
		state = PlayingBackward
	}

	ctx, err := p.begin(ctx, state, func() error {
		if start < 0 || start > len(p.moves) || end < 0 || end > len(p.moves) {
			return fmt.Errorf("%w: range %d..%d of %d moves", ErrIndexOutOfRange, start, end, len(p.moves))
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer p.finish()

	p.setLeg(start)
	if err := p.seek(ctx, start, false); err != nil {
		return err
	}
	p.setLeg(end)
	return p.seek(ctx, end, true)
}

// Play plays from the cursor to the end of the sequence. When the cursor
// is already at the end, playback starts over from the beginning.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	start, end := p.cursor, len(p.moves)
	p.mu.Unlock()

	if start == end {
		start = 0
	}
	return p.PlayRange(ctx, start, end)
}

// Rewind plays backward from the cursor to the start of the sequence.
func (p *Player) Rewind(ctx context.Context) error {
	return p.PlayRange(ctx, p.Cursor(), 0)
}

// Seek jumps the cursor to index without pacing. Every move passed fires
// the move callback.
func (p *Player) Seek(ctx context.Context, index int) error {
	ctx, err := p.begin(ctx, SteppingOne, func() error {
		if index < 0 || index > len(p.moves) {
			return fmt.Errorf("%w: index %d of %d moves", ErrIndexOutOfRange, index, len(p.moves))
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer p.finish()
	return p.seek(ctx, index, false)
}

// begin claims the player for one operation. check runs under the lock.
func (p *Player) begin(ctx context.Context, state PlayerState, check func() error) (context.Context, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != Idle {
		return nil, ErrBusy
	}
	if check != nil {
		if err := check(); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	p.status = state
	p.stop = cancel
	return ctx, nil
}

// setLeg reports the direction from the cursor to target.
func (p *Player) setLeg(target int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if target < p.cursor {
		p.status = PlayingBackward
	} else if target > p.cursor {
		p.status = PlayingForward
	}
}

func (p *Player) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		p.stop()
	}
	p.stop = nil
	p.status = Idle
}

// seek moves the cursor to target one move at a time.
func (p *Player) seek(ctx context.Context, target int, paced bool) error {
	for {
		cursor := p.Cursor()
		if cursor == target {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		dir := Forward
		if target < cursor {
			dir = Backward
		}
		if err := p.advance(ctx, dir, paced); err != nil {
			return err
		}
	}
}

// advance applies one move in direction dir and moves the cursor.
func (p *Player) advance(ctx context.Context, dir Direction, paced bool) error {
	p.mu.Lock()

	var idx int
	var m Move
	if dir == Forward {
		if p.cursor >= len(p.moves) {
			p.mu.Unlock()
			return ErrIndexOutOfRange
		}
		idx = p.cursor
		m = p.moves[idx]
	} else {
		if p.cursor <= 0 {
			p.mu.Unlock()
			return ErrIndexOutOfRange
		}
		idx = p.cursor - 1
		m = Invert(p.moves[idx])
	}

	hint, err := p.cube.ApplyMove(m)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if dir == Forward {
		p.cursor++
	} else {
		p.cursor--
	}

	ev := MoveEvent{
		Index:     idx,
		Move:      m,
		Direction: dir,
		Cursor:    p.cursor,
		Hint:      hint,
	}
	cb, pacer := p.onMove, p.pacer
	p.mu.Unlock()

	p.log.WithFields(logrus.Fields{
		"face":   m.Face.String(),
		"prime":  m.Prime,
		"double": m.Double,
		"cursor": ev.Cursor,
	}).Debug("move applied")

	if cb != nil {
		cb(ev)
	}
	if paced && pacer != nil {
		if err := pacer(ctx, ev); err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: %w", ErrCanceled, err)
			}
			return err
		}
	}
	return nil
}
