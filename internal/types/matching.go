package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of a matching session.
type SessionStatus string

// A session is created pending and flipped to completed once its result
// rows are persisted. Failed runs delete the pending row instead of
// recording a terminal status.
const (
	SessionPending   SessionStatus = "pending"
	SessionCompleted SessionStatus = "completed"
)

// SpecialInterview is an operator-declared pin: the candidate sits at the
// company's table in the given session regardless of scores.
type SpecialInterview struct {
	CompanyID     string `json:"company_id" validate:"required"`
	CandidateID   string `json:"candidate_id" validate:"required"`
	SessionNumber int    `json:"session_number" validate:"required,min=1"`
}

// SessionAssignment is the unit of scheduler output: the candidates seated
// at one company's table in one session. SpecialIDs is the subset of
// CandidateIDs that were pinned there.
type SessionAssignment struct {
	SessionNumber int      `json:"session_number"`
	CompanyID     string   `json:"company_id"`
	CandidateIDs  []string `json:"candidate_ids"`
	SpecialIDs    []string `json:"special_interview_ids,omitempty"`
}

// MatchingSession is the persisted configuration and status of one engine
// run for an event.
type MatchingSession struct {
	ID           uuid.UUID          `json:"id"`
	EventID      string             `json:"event_id"`
	SessionCount int                `json:"session_count"`
	Weights      MatchingWeights    `json:"weights"`
	Pins         []SpecialInterview `json:"special_interviews,omitempty"`
	Status       SessionStatus      `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
}

// MatchingResult is one stored assignment row with the recomputed score
// and display metadata attached on read. MatchScore is nil when the pair
// has no rating on one or both sides.
type MatchingResult struct {
	SessionNumber      int      `json:"session_number"`
	CompanyID          string   `json:"company_id"`
	CompanyName        string   `json:"company_name,omitempty"`
	CandidateID        string   `json:"candidate_id"`
	CandidateName      string   `json:"candidate_name,omitempty"`
	IsSpecialInterview bool     `json:"is_special_interview"`
	MatchScore         *float64 `json:"match_score,omitempty"`
}

// ExecuteMatchingRequest is the API request body for starting a run.
type ExecuteMatchingRequest struct {
	EventID         string             `json:"event_id" validate:"required"`
	SessionCount    int                `json:"session_count" validate:"required,min=1"`
	CompanyWeight   *float64           `json:"company_weight,omitempty" validate:"omitempty,min=0,max=1"`
	CandidateWeight *float64           `json:"candidate_weight,omitempty" validate:"omitempty,min=0,max=1"`
	Pins            []SpecialInterview `json:"special_interviews,omitempty" validate:"dive"`
}

// Validate validates the ExecuteMatchingRequest using the validator.
func (r *ExecuteMatchingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// WeightsOrDefault resolves the request weights, falling back to the
// production default when neither side is supplied.
func (r *ExecuteMatchingRequest) WeightsOrDefault() MatchingWeights {
	if r.CompanyWeight == nil && r.CandidateWeight == nil {
		return DefaultWeights
	}
	w := MatchingWeights{}
	if r.CompanyWeight != nil {
		w.Company = *r.CompanyWeight
	}
	if r.CandidateWeight != nil {
		w.Candidate = *r.CandidateWeight
	}
	return w
}
