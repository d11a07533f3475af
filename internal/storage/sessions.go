package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one run of a playback or apply command.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	Label        *string
	SequenceText *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(label, sequence string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var labelPtr, sequencePtr *string
	if label != "" {
		labelPtr = &label
	}
	if sequence != "" {
		sequencePtr = &sequence
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, label, sequence_text)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339Nano), labelPtr, sequencePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339Nano, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339Nano), endedAt.Sub(startedAt).Milliseconds(), sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID. It returns nil if there is none.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, label, sequence_text
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &startedAtStr, &endedAtStr, &s.DurationMs, &s.Label, &s.SequenceText)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339Nano, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

// List returns all sessions, oldest first.
func (r *SessionRepository) List() ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id FROM sessions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()

	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		s, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		if s != nil {
			sessions = append(sessions, *s)
		}
	}
	return sessions, nil
}
