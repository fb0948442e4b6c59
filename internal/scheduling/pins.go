// Package scheduling implements the session-rotation assignment algorithm:
// pin reservation, round-by-round greedy seating, and result flattening.
package scheduling

import (
	"fmt"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// ValidatePins re-validates operator-declared special interviews against the
// participating roster. The admin UI enforces the same rules before
// submission, but the engine never trusts that. Violations are returned as
// a validation error, never silently dropped.
//
// Rules:
//   - session number within [1, sessionCount]
//   - pinned ids must belong to the event roster
//   - a company hosts at most one pinned candidate per session
//   - a candidate attends at most one pinned company per session
//   - a (company, candidate) pair is pinned at most once across all
//     sessions, since a second pin would force a repeat meeting
func ValidatePins(pins []types.SpecialInterview, sessionCount int, companyIDs, candidateIDs []string) error {
	companies := make(map[string]bool, len(companyIDs))
	for _, id := range companyIDs {
		companies[id] = true
	}
	candidates := make(map[string]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		candidates[id] = true
	}

	type sessionSlot struct {
		session int
		id      string
	}
	companySlots := make(map[sessionSlot]bool)
	candidateSlots := make(map[sessionSlot]bool)
	pairs := make(map[types.Pair]bool)

	for _, pin := range pins {
		if pin.SessionNumber < 1 || pin.SessionNumber > sessionCount {
			return &types.ValidationError{
				Field:   "special_interviews",
				Message: fmt.Sprintf("session number %d out of range (1-%d)", pin.SessionNumber, sessionCount),
			}
		}
		if !companies[pin.CompanyID] {
			return &types.ValidationError{
				Field:   "special_interviews",
				Message: fmt.Sprintf("company %s is not participating in this event", pin.CompanyID),
			}
		}
		if !candidates[pin.CandidateID] {
			return &types.ValidationError{
				Field:   "special_interviews",
				Message: fmt.Sprintf("candidate %s is not attending this event", pin.CandidateID),
			}
		}

		companySlot := sessionSlot{session: pin.SessionNumber, id: pin.CompanyID}
		if companySlots[companySlot] {
			return &types.ValidationError{
				Field:   "special_interviews",
				Message: fmt.Sprintf("company %s has more than one pin in session %d", pin.CompanyID, pin.SessionNumber),
			}
		}
		companySlots[companySlot] = true

		candidateSlot := sessionSlot{session: pin.SessionNumber, id: pin.CandidateID}
		if candidateSlots[candidateSlot] {
			return &types.ValidationError{
				Field:   "special_interviews",
				Message: fmt.Sprintf("candidate %s has more than one pin in session %d", pin.CandidateID, pin.SessionNumber),
			}
		}
		candidateSlots[candidateSlot] = true

		pair := types.Pair{CompanyID: pin.CompanyID, CandidateID: pin.CandidateID}
		if pairs[pair] {
			return &types.ValidationError{
				Field:   "special_interviews",
				Message: fmt.Sprintf("pair (%s, %s) is pinned more than once; repeat meetings are not allowed", pin.CompanyID, pin.CandidateID),
			}
		}
		pairs[pair] = true
	}

	return nil
}
