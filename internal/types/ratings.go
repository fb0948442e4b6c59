package types

import "fmt"

// SubGrades holds the five sub-dimension grades a recruiter records
// alongside the overall grade.
type SubGrades struct {
	Logic         Grade `json:"logic"`
	Initiative    Grade `json:"initiative"`
	Creativity    Grade `json:"creativity"`
	Communication Grade `json:"communication"`
	Cooperation   Grade `json:"cooperation"`
}

// CompanyRating is a recruiter's evaluation of a candidate. One row per
// (company, candidate) pair per event; re-evaluations overwrite in place
// upstream, so the engine never sees duplicates.
type CompanyRating struct {
	CompanyID   string     `json:"company_id"`
	CandidateID string     `json:"candidate_id"`
	Grade       Grade      `json:"grade"`
	Details     *SubGrades `json:"details,omitempty"`
}

// CandidateRating is a candidate's star rating of a company (1-5).
type CandidateRating struct {
	CompanyID   string `json:"company_id"`
	CandidateID string `json:"candidate_id"`
	Stars       int    `json:"stars"`
}

// MatchingWeights blends the two rating directions into one score.
// Company + Candidate must sum to 1.
type MatchingWeights struct {
	Company   float64 `json:"company_weight"`
	Candidate float64 `json:"candidate_weight"`
}

// DefaultWeights is the observed production default: recruiter opinion
// dominates at 0.7 against the candidate's 0.3.
var DefaultWeights = MatchingWeights{Company: 0.7, Candidate: 0.3}

const weightEpsilon = 1e-9

// Validate checks that both weights are within [0,1] and sum to 1.
func (w MatchingWeights) Validate() error {
	if w.Company < 0 || w.Company > 1 || w.Candidate < 0 || w.Candidate > 1 {
		return &ValidationError{Field: "weights", Message: fmt.Sprintf("weights must be within [0,1]: company=%g candidate=%g", w.Company, w.Candidate)}
	}
	sum := w.Company + w.Candidate
	if sum < 1-weightEpsilon || sum > 1+weightEpsilon {
		return &ValidationError{Field: "weights", Message: fmt.Sprintf("weights must sum to 1, got %g", sum)}
	}
	return nil
}

// CombinedScore is the weighted blend of both rating directions for a
// fully-rated pair. Derived on every read, never persisted.
type CombinedScore struct {
	CompanyID   string  `json:"company_id"`
	CandidateID string  `json:"candidate_id"`
	Score       float64 `json:"score"`
}

// Pair identifies a (company, candidate) combination.
type Pair struct {
	CompanyID   string
	CandidateID string
}
