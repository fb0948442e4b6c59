// Package matching orchestrates the session-rotation engine: it reads the
// event roster and ratings, computes the schedule, and persists the result.
package matching

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/o-tatsuki1029/jobtv-matching/internal/scheduling"
	"github.com/o-tatsuki1029/jobtv-matching/internal/scoring"
	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// Store is the persistence boundary of the engine. The roster and rating
// tables are owned by the event platform and read-only here; the session
// and result tables are owned and written only by this package.
type Store interface {
	ListEventCompanies(ctx context.Context, eventID string) ([]types.Company, error)
	ListAttendedCandidates(ctx context.Context, eventID string) ([]types.Candidate, error)
	ListCompanyRatings(ctx context.Context, eventID string) ([]types.CompanyRating, error)
	ListCandidateRatings(ctx context.Context, eventID string) ([]types.CandidateRating, error)

	DeletePendingSession(ctx context.Context, eventID string) error
	CreateSession(ctx context.Context, session *types.MatchingSession) error
	InsertResults(ctx context.Context, sessionID uuid.UUID, rows []scheduling.ResultRow) error
	CompleteSession(ctx context.Context, sessionID uuid.UUID, completedAt time.Time) error

	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.MatchingSession, error)
	ListResults(ctx context.Context, sessionID uuid.UUID) ([]scheduling.ResultRow, error)
}

// Engine runs the matching computation for an event. Concurrent runs for
// the same event are collapsed into one via singleflight, so the persisted
// delete-then-recreate sequence never races against itself in-process.
type Engine struct {
	store Store
	group singleflight.Group
}

// New creates an engine backed by the given store.
func New(store Store) *Engine {
	return &Engine{store: store}
}

// ExecuteMatching computes and persists a full schedule for the event.
// It returns the new session id, or an error for an empty roster, invalid
// weights/pins, or any persistence failure. A schedule with zero
// assignments is logged as an anomaly but still reported as success.
func (e *Engine) ExecuteMatching(ctx context.Context, req *types.ExecuteMatchingRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, &types.ValidationError{Field: "request", Message: err.Error()}
	}
	weights := req.WeightsOrDefault()
	if err := weights.Validate(); err != nil {
		return uuid.Nil, err
	}

	v, err, _ := e.group.Do(req.EventID, func() (any, error) {
		return e.run(ctx, req, weights)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return v.(uuid.UUID), nil
}

func (e *Engine) run(ctx context.Context, req *types.ExecuteMatchingRequest, weights types.MatchingWeights) (uuid.UUID, error) {
	companies, err := e.store.ListEventCompanies(ctx, req.EventID)
	if err != nil {
		return uuid.Nil, &PersistenceError{Op: "list companies", Err: err}
	}
	if len(companies) == 0 {
		return uuid.Nil, &types.ValidationError{Field: "event_id", Message: fmt.Sprintf("no participating companies for event %s", req.EventID)}
	}

	candidates, err := e.store.ListAttendedCandidates(ctx, req.EventID)
	if err != nil {
		return uuid.Nil, &PersistenceError{Op: "list candidates", Err: err}
	}
	if len(candidates) == 0 {
		return uuid.Nil, &types.ValidationError{Field: "event_id", Message: fmt.Sprintf("no attended candidates for event %s", req.EventID)}
	}

	companyIDs := make([]string, len(companies))
	for i, c := range companies {
		companyIDs[i] = c.ID
	}
	candidateIDs := make([]string, len(candidates))
	for i, c := range candidates {
		candidateIDs[i] = c.ID
	}

	table, err := e.combineScores(ctx, req.EventID, companyIDs, candidateIDs, weights)
	if err != nil {
		return uuid.Nil, err
	}

	assignments, err := scheduling.Schedule(companyIDs, candidateIDs, req.SessionCount, table, req.Pins)
	if err != nil {
		return uuid.Nil, err
	}
	rows := scheduling.Flatten(assignments)
	if len(rows) == 0 {
		// Anomaly, not a failure: the run still completes with an empty
		// schedule the operator can inspect.
		log.Printf("matching: event %s produced zero assignments (%d companies, %d candidates, %d sessions)",
			req.EventID, len(companies), len(candidates), req.SessionCount)
	}

	// A leftover pending session from a crashed run is superseded.
	if err := e.store.DeletePendingSession(ctx, req.EventID); err != nil {
		return uuid.Nil, &PersistenceError{Op: "delete pending session", Err: err}
	}

	session := &types.MatchingSession{
		ID:           uuid.New(),
		EventID:      req.EventID,
		SessionCount: req.SessionCount,
		Weights:      weights,
		Pins:         req.Pins,
		Status:       types.SessionPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.store.CreateSession(ctx, session); err != nil {
		return uuid.Nil, &PersistenceError{Op: "create session", Err: err}
	}

	if err := e.store.InsertResults(ctx, session.ID, rows); err != nil {
		e.discardPending(ctx, req.EventID)
		return uuid.Nil, &PersistenceError{Op: "insert results", Err: err}
	}
	if err := e.store.CompleteSession(ctx, session.ID, time.Now().UTC()); err != nil {
		e.discardPending(ctx, req.EventID)
		return uuid.Nil, &PersistenceError{Op: "complete session", Err: err}
	}

	return session.ID, nil
}

// discardPending removes the half-written pending session after a failed
// run. No terminal failed status is persisted; the operator re-triggers
// the run explicitly.
func (e *Engine) discardPending(ctx context.Context, eventID string) {
	if err := e.store.DeletePendingSession(ctx, eventID); err != nil {
		log.Printf("matching: failed to discard pending session for event %s: %v", eventID, err)
	}
}

func (e *Engine) combineScores(ctx context.Context, eventID string, companyIDs, candidateIDs []string, weights types.MatchingWeights) (*scoring.Table, error) {
	companyRatings, err := e.store.ListCompanyRatings(ctx, eventID)
	if err != nil {
		return nil, &PersistenceError{Op: "list company ratings", Err: err}
	}
	candidateRatings, err := e.store.ListCandidateRatings(ctx, eventID)
	if err != nil {
		return nil, &PersistenceError{Op: "list candidate ratings", Err: err}
	}

	// Restrict to the participating roster: ratings for no-show candidates
	// or withdrawn companies must not influence the schedule.
	participating := make(map[types.Pair]bool)
	for _, companyID := range companyIDs {
		for _, candidateID := range candidateIDs {
			participating[types.Pair{CompanyID: companyID, CandidateID: candidateID}] = true
		}
	}
	filteredCompany := companyRatings[:0:0]
	for _, r := range companyRatings {
		if participating[types.Pair{CompanyID: r.CompanyID, CandidateID: r.CandidateID}] {
			filteredCompany = append(filteredCompany, r)
		}
	}
	filteredCandidate := candidateRatings[:0:0]
	for _, r := range candidateRatings {
		if participating[types.Pair{CompanyID: r.CompanyID, CandidateID: r.CandidateID}] {
			filteredCandidate = append(filteredCandidate, r)
		}
	}

	return scoring.Combine(filteredCompany, filteredCandidate, weights)
}

// GetMatchingResults loads the stored schedule for a session and attaches
// a freshly recomputed match score plus display metadata to every row.
// Scores are never persisted, so they always reflect the latest ratings.
// Pure read; the schedule itself is never mutated.
func (e *Engine) GetMatchingResults(ctx context.Context, sessionID uuid.UUID) ([]types.MatchingResult, error) {
	session, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, &PersistenceError{Op: "get session", Err: err}
	}
	if session == nil {
		return nil, &ErrSessionNotFound{SessionID: sessionID}
	}

	rows, err := e.store.ListResults(ctx, sessionID)
	if err != nil {
		return nil, &PersistenceError{Op: "list results", Err: err}
	}

	companies, err := e.store.ListEventCompanies(ctx, session.EventID)
	if err != nil {
		return nil, &PersistenceError{Op: "list companies", Err: err}
	}
	candidates, err := e.store.ListAttendedCandidates(ctx, session.EventID)
	if err != nil {
		return nil, &PersistenceError{Op: "list candidates", Err: err}
	}

	companyNames := make(map[string]string, len(companies))
	companyIDs := make([]string, len(companies))
	for i, c := range companies {
		companyNames[c.ID] = c.Name
		companyIDs[i] = c.ID
	}
	candidateNames := make(map[string]string, len(candidates))
	candidateIDs := make([]string, len(candidates))
	for i, c := range candidates {
		candidateNames[c.ID] = c.Name
		candidateIDs[i] = c.ID
	}

	table, err := e.combineScores(ctx, session.EventID, companyIDs, candidateIDs, session.Weights)
	if err != nil {
		return nil, err
	}

	results := make([]types.MatchingResult, 0, len(rows))
	for _, row := range rows {
		result := types.MatchingResult{
			SessionNumber:      row.SessionNumber,
			CompanyID:          row.CompanyID,
			CompanyName:        companyNames[row.CompanyID],
			CandidateID:        row.CandidateID,
			CandidateName:      candidateNames[row.CandidateID],
			IsSpecialInterview: row.IsSpecialInterview,
		}
		if score, ok := table.Lookup(row.CompanyID, row.CandidateID); ok {
			result.MatchScore = &score
		}
		results = append(results, result)
	}
	return results, nil
}
