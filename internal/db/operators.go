package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Operator is an admin account allowed to trigger matching runs.
type Operator struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetOperatorByEmail retrieves an operator account by email. Returns
// (nil, nil) when no operator exists.
func (db *DB) GetOperatorByEmail(ctx context.Context, email string) (*Operator, error) {
	var op Operator
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM operators WHERE email = $1`,
		email,
	).Scan(&op.ID, &op.Email, &op.PasswordHash, &op.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return &op, nil
}
