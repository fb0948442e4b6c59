package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/o-tatsuki1029/jobtv-matching/internal/scheduling"
	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// -----------------------------------------------------------------------------
// Matching session and result methods (owned and written by the engine)
// -----------------------------------------------------------------------------

// DeletePendingSession removes any leftover pending session for the event
// together with its result rows. Completed sessions are left alone.
func (db *DB) DeletePendingSession(ctx context.Context, eventID string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			fmt.Printf("Rollback error: %v\n", rErr)
		}
	}()

	_, err = tx.Exec(ctx,
		`DELETE FROM matching_results
		 WHERE session_id IN
		   (SELECT id FROM matching_sessions WHERE event_id = $1 AND status = 'pending')`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pending session results: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM matching_sessions WHERE event_id = $1 AND status = 'pending'`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pending session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pending session delete: %w", err)
	}
	return nil
}

// CreateSession stores a new matching session row.
func (db *DB) CreateSession(ctx context.Context, session *types.MatchingSession) error {
	pinsJSON, err := json.Marshal(session.Pins)
	if err != nil {
		return fmt.Errorf("failed to marshal special interviews: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO matching_sessions
		   (id, event_id, session_count, company_weight, candidate_weight, special_interviews, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.EventID, session.SessionCount,
		session.Weights.Company, session.Weights.Candidate,
		pinsJSON, string(session.Status), session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create matching session: %w", err)
	}
	return nil
}

// InsertResults stores the flattened schedule rows for a session.
func (db *DB) InsertResults(ctx context.Context, sessionID uuid.UUID, rows []scheduling.ResultRow) error {
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(
			`INSERT INTO matching_results
			   (session_id, session_number, company_id, candidate_id, is_special)
			 VALUES ($1, $2, $3, $4, $5)`,
			sessionID, row.SessionNumber, row.CompanyID, row.CandidateID, row.IsSpecialInterview,
		)
	}
	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range rows {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert matching results: %w", err)
		}
	}
	return nil
}

// CompleteSession flips a session from pending to completed.
func (db *DB) CompleteSession(ctx context.Context, sessionID uuid.UUID, completedAt time.Time) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE matching_sessions SET status = 'completed', completed_at = $1 WHERE id = $2`,
		completedAt, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete matching session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("matching session %s not found", sessionID)
	}
	return nil
}

// GetSession retrieves a matching session by id. Returns (nil, nil) when no
// session exists.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.MatchingSession, error) {
	var s types.MatchingSession
	var pinsJSON []byte
	var status string

	err := db.pool.QueryRow(ctx,
		`SELECT id, event_id, session_count, company_weight, candidate_weight,
		        special_interviews, status, created_at, completed_at
		 FROM matching_sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.EventID, &s.SessionCount, &s.Weights.Company, &s.Weights.Candidate,
		&pinsJSON, &status, &s.CreatedAt, &s.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get matching session: %w", err)
	}

	s.Status = types.SessionStatus(status)
	if pinsJSON != nil {
		if err := json.Unmarshal(pinsJSON, &s.Pins); err != nil {
			return nil, fmt.Errorf("failed to parse special interviews: %w", err)
		}
	}
	return &s, nil
}

// ListResults retrieves the stored schedule rows for a session in
// (session, company, candidate) order.
func (db *DB) ListResults(ctx context.Context, sessionID uuid.UUID) ([]scheduling.ResultRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT session_number, company_id, candidate_id, is_special
		 FROM matching_results WHERE session_id = $1
		 ORDER BY session_number, company_id, candidate_id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matching results: %w", err)
	}
	defer rows.Close()

	var out []scheduling.ResultRow
	for rows.Next() {
		var r scheduling.ResultRow
		if err := rows.Scan(&r.SessionNumber, &r.CompanyID, &r.CandidateID, &r.IsSpecialInterview); err != nil {
			return nil, fmt.Errorf("failed to scan matching result: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matching results: %w", err)
	}
	return out, nil
}
