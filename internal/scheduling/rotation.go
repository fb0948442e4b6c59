package scheduling

import (
	"sort"

	"github.com/o-tatsuki1029/jobtv-matching/internal/scoring"
	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// Schedule produces sessionCount rounds of roundtable assignments.
//
// Invariants enforced per round and across the whole event:
//   - a candidate sits at at most one company table per session
//   - a (company, candidate) pair meets at most once, pins included
//   - candidates are spread across companies as evenly as the counts allow
//   - seats fill greedily by descending combined score; unrated pairs
//     compete at score zero so every candidate still gets a seat when
//     capacity allows
//
// The output is a pure function of its inputs: ids are processed in sorted
// order and score ties break on (company id, candidate id) ascending, so
// identical inputs always yield identical assignments.
func Schedule(
	companyIDs, candidateIDs []string,
	sessionCount int,
	scores *scoring.Table,
	pins []types.SpecialInterview,
) ([]types.SessionAssignment, error) {
	if err := ValidatePins(pins, sessionCount, companyIDs, candidateIDs); err != nil {
		return nil, err
	}

	companies := sortedCopy(companyIDs)
	candidates := sortedCopy(candidateIDs)

	met := make(map[types.Pair]bool)
	for _, pin := range pins {
		met[types.Pair{CompanyID: pin.CompanyID, CandidateID: pin.CandidateID}] = true
	}

	var assignments []types.SessionAssignment
	for session := 1; session <= sessionCount; session++ {
		capacity := seatCapacity(companies, len(candidates))
		seats := make(map[string][]string)
		specials := make(map[string][]string)
		seated := make(map[string]bool)

		// Pins claim their seats before anything else and count against
		// the hosting company's capacity.
		for _, pin := range pins {
			if pin.SessionNumber != session {
				continue
			}
			seats[pin.CompanyID] = append(seats[pin.CompanyID], pin.CandidateID)
			specials[pin.CompanyID] = append(specials[pin.CompanyID], pin.CandidateID)
			seated[pin.CandidateID] = true
			if capacity[pin.CompanyID] > 0 {
				capacity[pin.CompanyID]--
			}
		}

		// Remaining feasible pairs for this round.
		type openPair struct {
			companyID   string
			candidateID string
			score       float64
		}
		var open []openPair
		for _, companyID := range companies {
			if capacity[companyID] <= 0 {
				continue
			}
			for _, candidateID := range candidates {
				if seated[candidateID] {
					continue
				}
				if met[types.Pair{CompanyID: companyID, CandidateID: candidateID}] {
					continue
				}
				score, _ := scores.Lookup(companyID, candidateID)
				open = append(open, openPair{companyID: companyID, candidateID: candidateID, score: score})
			}
		}
		sort.Slice(open, func(i, j int) bool {
			if open[i].score != open[j].score {
				return open[i].score > open[j].score
			}
			if open[i].companyID != open[j].companyID {
				return open[i].companyID < open[j].companyID
			}
			return open[i].candidateID < open[j].candidateID
		})

		for _, pair := range open {
			if capacity[pair.companyID] <= 0 || seated[pair.candidateID] {
				continue
			}
			seats[pair.companyID] = append(seats[pair.companyID], pair.candidateID)
			seated[pair.candidateID] = true
			met[types.Pair{CompanyID: pair.companyID, CandidateID: pair.candidateID}] = true
			capacity[pair.companyID]--
		}

		for _, companyID := range companies {
			ids := seats[companyID]
			if len(ids) == 0 {
				continue
			}
			sort.Strings(ids)
			special := specials[companyID]
			sort.Strings(special)
			assignments = append(assignments, types.SessionAssignment{
				SessionNumber: session,
				CompanyID:     companyID,
				CandidateIDs:  ids,
				SpecialIDs:    special,
			})
		}
	}

	return assignments, nil
}

// seatCapacity splits the candidate count evenly across companies for one
// session: every company gets candidates/companies seats, and the first
// candidates%companies companies (ascending id order) take one extra.
func seatCapacity(companies []string, candidateCount int) map[string]int {
	capacity := make(map[string]int, len(companies))
	if len(companies) == 0 {
		return capacity
	}
	base := candidateCount / len(companies)
	extra := candidateCount % len(companies)
	for i, companyID := range companies {
		capacity[companyID] = base
		if i < extra {
			capacity[companyID]++
		}
	}
	return capacity
}

func sortedCopy(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
