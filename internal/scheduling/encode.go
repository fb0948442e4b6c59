package scheduling

import "github.com/o-tatsuki1029/jobtv-matching/internal/types"

// ResultRow is the flattened persistence shape of one filled seat.
type ResultRow struct {
	SessionNumber      int    `json:"session_number"`
	CompanyID          string `json:"company_id"`
	CandidateID        string `json:"candidate_id"`
	IsSpecialInterview bool   `json:"is_special_interview"`
}

// Flatten expands each assignment's seat list into one row per candidate,
// preserving the (session, company, candidate) ordering of the schedule.
// The total row count equals the number of seats filled across the event.
func Flatten(assignments []types.SessionAssignment) []ResultRow {
	var rows []ResultRow
	for _, a := range assignments {
		special := make(map[string]bool, len(a.SpecialIDs))
		for _, id := range a.SpecialIDs {
			special[id] = true
		}
		for _, candidateID := range a.CandidateIDs {
			rows = append(rows, ResultRow{
				SessionNumber:      a.SessionNumber,
				CompanyID:          a.CompanyID,
				CandidateID:        candidateID,
				IsSpecialInterview: special[candidateID],
			})
		}
	}
	return rows
}
