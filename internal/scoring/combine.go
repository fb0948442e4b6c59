// Package scoring blends company and candidate ratings into combined match scores.
package scoring

import (
	"fmt"
	"sort"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// Table holds the combined scores for an event, keyed by pair. It is
// derived from the latest ratings on every run and never persisted.
type Table struct {
	scores map[types.Pair]float64
}

// Combine computes one weighted score per (company, candidate) pair that
// has ratings recorded in BOTH directions. Pairs with only one side rated
// are excluded; they still compete for seats downstream at score zero.
//
// Both rating scales are normalized onto [0,1] before blending, so
// score = companyWeight*normalizedGrade + candidateWeight*normalizedStars
// is itself within [0,1].
func Combine(
	companyRatings []types.CompanyRating,
	candidateRatings []types.CandidateRating,
	weights types.MatchingWeights,
) (*Table, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	grades := make(map[types.Pair]types.Grade, len(companyRatings))
	for _, r := range companyRatings {
		if !r.Grade.IsValid() {
			return nil, &types.ValidationError{
				Field:   "grade",
				Message: fmt.Sprintf("invalid grade %q for company %s candidate %s", r.Grade, r.CompanyID, r.CandidateID),
			}
		}
		grades[types.Pair{CompanyID: r.CompanyID, CandidateID: r.CandidateID}] = r.Grade
	}

	scores := make(map[types.Pair]float64)
	for _, r := range candidateRatings {
		if r.Stars < types.StarMin || r.Stars > types.StarMax {
			return nil, &types.ValidationError{
				Field:   "stars",
				Message: fmt.Sprintf("star rating out of range: %d for company %s candidate %s", r.Stars, r.CompanyID, r.CandidateID),
			}
		}
		pair := types.Pair{CompanyID: r.CompanyID, CandidateID: r.CandidateID}
		grade, ok := grades[pair]
		if !ok {
			continue // one-sided pair, no combined score
		}

		score := weights.Company*types.NormalizeGrade(grade) + weights.Candidate*types.NormalizeStars(r.Stars)
		if score > 1.0 {
			score = 1.0
		}
		if score < 0.0 {
			score = 0.0
		}
		scores[pair] = score
	}

	return &Table{scores: scores}, nil
}

// Lookup returns the combined score for a pair, reporting whether the pair
// was rated on both sides.
func (t *Table) Lookup(companyID, candidateID string) (float64, bool) {
	score, ok := t.scores[types.Pair{CompanyID: companyID, CandidateID: candidateID}]
	return score, ok
}

// Len returns the number of fully-rated pairs.
func (t *Table) Len() int {
	return len(t.scores)
}

// Rows flattens the table into CombinedScore rows sorted by descending
// score, ties broken by ascending company then candidate id.
func (t *Table) Rows() []types.CombinedScore {
	rows := make([]types.CombinedScore, 0, len(t.scores))
	for pair, score := range t.scores {
		rows = append(rows, types.CombinedScore{
			CompanyID:   pair.CompanyID,
			CandidateID: pair.CandidateID,
			Score:       score,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if rows[i].CompanyID != rows[j].CompanyID {
			return rows[i].CompanyID < rows[j].CompanyID
		}
		return rows[i].CandidateID < rows[j].CandidateID
	})
	return rows
}
