// Package recorder journals the moves a Player commits.
package recorder

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubeplay"
	"github.com/SeamusWaldron/cubeplay/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyRecording = errors.New("recorder: session already in progress")
	ErrNotRecording     = errors.New("recorder: no session in progress")
)

// Summary describes a finished or running session.
type Summary struct {
	SessionID          string
	Moves              int
	OrientationChanges int
	ElapsedMs          int64
}

// Session records committed moves and orientation changes to the journal.
type Session struct {
	db  *storage.DB
	log *logrus.Logger

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	// Last orientation seen, to detect changes
	lastUp    cubeplay.Color
	lastFront cubeplay.Color

	sessionRepo     *storage.SessionRepository
	moveRepo        *storage.MoveRepository
	orientationRepo *storage.OrientationRepository

	onOrientation func(up, front cubeplay.Color)
}

// NewSession creates a new session manager over db. A nil logger discards
// output.
func NewSession(db *storage.DB, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Session{
		db:              db,
		log:             log,
		state:           StateIdle,
		sessionRepo:     storage.NewSessionRepository(db),
		moveRepo:        storage.NewMoveRepository(db),
		orientationRepo: storage.NewOrientationRepository(db),
	}
}

// SetOrientationCallback sets the callback for orientation changes.
func (s *Session) SetOrientationCallback(cb func(up, front cubeplay.Color)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOrientation = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// MoveCount returns the number of moves recorded.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// ElapsedMs returns the elapsed time since the session started.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// Start opens a new session. The held orientation of initial is the
// baseline for change detection.
func (s *Session) Start(label, sequence string, initial cubeplay.CubeState) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrAlreadyRecording
	}

	sessionID, err := s.sessionRepo.Create(label, sequence)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.moveIndex = 0
	s.lastUp = initial.UpColor()
	s.lastFront = initial.FrontColor()
	s.state = StateRecording

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"label":   label,
	}).Debug("recording started")

	return sessionID, nil
}

// End closes the current session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	s.log.WithFields(logrus.Fields{
		"session": s.sessionID,
		"moves":   s.moveIndex,
	}).Debug("recording ended")

	return nil
}

// Record stores a committed move and, if it changed how the cube is held,
// the new orientation. Moves are ignored when not recording.
func (s *Session) Record(ev cubeplay.MoveEvent, after cubeplay.CubeState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()

	moveID, err := s.moveRepo.Create(s.sessionID, s.moveIndex, tsMs, ev)
	if err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++

	up, front := after.UpColor(), after.FrontColor()
	if up != s.lastUp || front != s.lastFront {
		_, err := s.orientationRepo.Create(s.sessionID, tsMs, up.String(), front.String(), &moveID)
		if err != nil {
			return fmt.Errorf("failed to store orientation: %w", err)
		}

		s.lastUp = up
		s.lastFront = front

		if s.onOrientation != nil {
			go s.onOrientation(up, front)
		}
	}

	return nil
}

// RecordMoves stores loose moves applied in one batch.
func (s *Session) RecordMoves(moves []cubeplay.Move, after cubeplay.CubeState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if err := s.moveRepo.CreateBatch(s.sessionID, moves, s.moveIndex, tsMs); err != nil {
		return fmt.Errorf("failed to store moves: %w", err)
	}
	s.moveIndex += len(moves)

	up, front := after.UpColor(), after.FrontColor()
	if up != s.lastUp || front != s.lastFront {
		if _, err := s.orientationRepo.Create(s.sessionID, tsMs, up.String(), front.String(), nil); err != nil {
			return fmt.Errorf("failed to store orientation: %w", err)
		}
		s.lastUp, s.lastFront = up, front
	}
	return nil
}

// Summary reports the counts stored for the current session.
func (s *Session) Summary() (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sessionID == "" {
		return Summary{}, ErrNotRecording
	}

	moves, err := s.moveRepo.Count(s.sessionID)
	if err != nil {
		return Summary{}, err
	}
	orientations, err := s.orientationRepo.Count(s.sessionID)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		SessionID:          s.sessionID,
		Moves:              moves,
		OrientationChanges: orientations,
	}
	if sess, err := s.sessionRepo.Get(s.sessionID); err == nil && sess != nil && sess.DurationMs != nil {
		sum.ElapsedMs = *sess.DurationMs
	} else if s.state == StateRecording {
		sum.ElapsedMs = time.Since(s.startTime).Milliseconds()
	}
	return sum, nil
}

// LastOrientation returns the most recent orientation change of the
// current session, or nil if the cube is still held as it started.
func (s *Session) LastOrientation() (*storage.OrientationRecord, error) {
	s.mu.RLock()
	id := s.sessionID
	s.mu.RUnlock()

	if id == "" {
		return nil, ErrNotRecording
	}
	return s.orientationRepo.GetLast(id)
}

// History summarizes every session in the journal, oldest first.
func (s *Session) History() ([]Summary, error) {
	sessions, err := s.sessionRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(sessions))
	for _, sess := range sessions {
		moves, err := s.moveRepo.Count(sess.SessionID)
		if err != nil {
			return nil, err
		}
		orientations, err := s.orientationRepo.Count(sess.SessionID)
		if err != nil {
			return nil, err
		}
		sum := Summary{
			SessionID:          sess.SessionID,
			Moves:              moves,
			OrientationChanges: orientations,
		}
		if sess.DurationMs != nil {
			sum.ElapsedMs = *sess.DurationMs
		}
		out = append(out, sum)
	}
	return out, nil
}

// Replay rebuilds the cube state by applying every journaled move of the
// current session to the solved cube. It matches the live state only for
// sessions started from solved.
func (s *Session) Replay() (cubeplay.CubeState, error) {
	s.mu.RLock()
	id := s.sessionID
	s.mu.RUnlock()

	if id == "" {
		return cubeplay.CubeState{}, ErrNotRecording
	}

	records, err := s.moveRepo.GetBySession(id)
	if err != nil {
		return cubeplay.CubeState{}, err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return cubeplay.CubeState{}, err
	}
	return cubeplay.ApplySequence(cubeplay.Solved(), moves)
}
