package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubeplay"
)

// MoveRecord is one committed move in the journal.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int // Order within the session
	SeqIndex  int // Position in the loaded sequence, -1 for a loose move
	TsMs      int64
	Notation  string
	Direction string
	Cursor    int
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, seq_index, ts_ms, notation, direction, cursor)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Create stores a move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, ev cubeplay.MoveEvent) (int64, error) {
	result, err := r.db.Exec(insertMove,
		sessionID, moveIndex, ev.Index, tsMs, ev.Move.Notation(), ev.Direction.String(), ev.Cursor)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores loose moves in a single transaction, as applied by
// the apply command.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubeplay.Move, startIndex int, tsMs int64) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(insertMove,
				sessionID, startIndex+i, -1, tsMs, m.Notation(), cubeplay.Forward.String(), 0)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, seq_index, ts_ms, notation, direction, cursor
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.SeqIndex, &m.TsMs, &m.Notation, &m.Direction, &m.Cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves parses the notation of each record back into moves.
func ToMoves(records []MoveRecord) ([]cubeplay.Move, error) {
	moves := make([]cubeplay.Move, len(records))
	for i, r := range records {
		m, err := cubeplay.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
