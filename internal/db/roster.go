package db

import (
	"context"
	"fmt"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// -----------------------------------------------------------------------------
// Roster and rating reads (owned by the event platform, read-only here)
// -----------------------------------------------------------------------------

// ListEventCompanies returns the companies registered to an event.
func (db *DB) ListEventCompanies(ctx context.Context, eventID string) ([]types.Company, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, event_id, name FROM companies WHERE event_id = $1 ORDER BY id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []types.Company
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}
	return companies, nil
}

// ListAttendedCandidates returns the candidates marked attended for an event.
func (db *DB) ListAttendedCandidates(ctx context.Context, eventID string) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, event_id, name, attended FROM candidates
		 WHERE event_id = $1 AND attended = TRUE ORDER BY id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.Attended); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

// ListCompanyRatings returns every recruiter evaluation recorded for the event.
func (db *DB) ListCompanyRatings(ctx context.Context, eventID string) ([]types.CompanyRating, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company_id, candidate_id, grade FROM company_ratings
		 WHERE event_id = $1 ORDER BY company_id, candidate_id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list company ratings: %w", err)
	}
	defer rows.Close()

	var ratings []types.CompanyRating
	for rows.Next() {
		var r types.CompanyRating
		var grade string
		if err := rows.Scan(&r.CompanyID, &r.CandidateID, &grade); err != nil {
			return nil, fmt.Errorf("failed to scan company rating: %w", err)
		}
		r.Grade = types.Grade(grade)
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read company ratings: %w", err)
	}
	return ratings, nil
}

// ListCandidateRatings returns every candidate star rating recorded for the event.
func (db *DB) ListCandidateRatings(ctx context.Context, eventID string) ([]types.CandidateRating, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company_id, candidate_id, stars FROM candidate_ratings
		 WHERE event_id = $1 ORDER BY company_id, candidate_id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate ratings: %w", err)
	}
	defer rows.Close()

	var ratings []types.CandidateRating
	for rows.Next() {
		var r types.CandidateRating
		if err := rows.Scan(&r.CompanyID, &r.CandidateID, &r.Stars); err != nil {
			return nil, fmt.Errorf("failed to scan candidate rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate ratings: %w", err)
	}
	return ratings, nil
}
