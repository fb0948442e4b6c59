package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

func TestCombine_BothSidesRequired(t *testing.T) {
	companyRatings := []types.CompanyRating{
		{CompanyID: "c1", CandidateID: "s1", Grade: types.GradeS},
		{CompanyID: "c1", CandidateID: "s2", Grade: types.GradeA}, // no candidate side
	}
	candidateRatings := []types.CandidateRating{
		{CompanyID: "c1", CandidateID: "s1", Stars: 5},
		{CompanyID: "c2", CandidateID: "s1", Stars: 3}, // no company side
	}

	table, err := Combine(companyRatings, candidateRatings, types.DefaultWeights)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	score, ok := table.Lookup("c1", "s1")
	require.True(t, ok)
	assert.InDelta(t, 1.0, score, 1e-12) // S + 5 stars is a perfect match

	_, ok = table.Lookup("c1", "s2")
	assert.False(t, ok)
	_, ok = table.Lookup("c2", "s1")
	assert.False(t, ok)
}

func TestCombine_WeightedBlend(t *testing.T) {
	companyRatings := []types.CompanyRating{
		{CompanyID: "c1", CandidateID: "s1", Grade: types.GradeB}, // normalized 1/3
	}
	candidateRatings := []types.CandidateRating{
		{CompanyID: "c1", CandidateID: "s1", Stars: 5}, // normalized 1
	}

	table, err := Combine(companyRatings, candidateRatings, types.MatchingWeights{Company: 0.7, Candidate: 0.3})
	require.NoError(t, err)

	score, ok := table.Lookup("c1", "s1")
	require.True(t, ok)
	assert.InDelta(t, 0.7*(1.0/3.0)+0.3*1.0, score, 1e-12)
}

func TestCombine_MonotonicInEachInput(t *testing.T) {
	weights := types.MatchingWeights{Company: 0.6, Candidate: 0.4}

	// Holding stars fixed, a better grade never lowers the score.
	prev := -1.0
	for _, g := range []types.Grade{types.GradeC, types.GradeB, types.GradeA, types.GradeS} {
		table, err := Combine(
			[]types.CompanyRating{{CompanyID: "c1", CandidateID: "s1", Grade: g}},
			[]types.CandidateRating{{CompanyID: "c1", CandidateID: "s1", Stars: 3}},
			weights,
		)
		require.NoError(t, err)
		score, ok := table.Lookup("c1", "s1")
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, prev, "grade %s", g)
		prev = score
	}

	// Holding the grade fixed, more stars never lower the score.
	prev = -1.0
	for stars := 1; stars <= 5; stars++ {
		table, err := Combine(
			[]types.CompanyRating{{CompanyID: "c1", CandidateID: "s1", Grade: types.GradeA}},
			[]types.CandidateRating{{CompanyID: "c1", CandidateID: "s1", Stars: stars}},
			weights,
		)
		require.NoError(t, err)
		score, ok := table.Lookup("c1", "s1")
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, prev, "stars %d", stars)
		prev = score
	}
}

func TestCombine_RejectsBadInput(t *testing.T) {
	_, err := Combine(
		[]types.CompanyRating{{CompanyID: "c1", CandidateID: "s1", Grade: "Z"}},
		nil,
		types.DefaultWeights,
	)
	var vErr *types.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = Combine(
		[]types.CompanyRating{{CompanyID: "c1", CandidateID: "s1", Grade: types.GradeA}},
		[]types.CandidateRating{{CompanyID: "c1", CandidateID: "s1", Stars: 6}},
		types.DefaultWeights,
	)
	require.ErrorAs(t, err, &vErr)

	_, err = Combine(nil, nil, types.MatchingWeights{Company: 0.9, Candidate: 0.9})
	require.ErrorAs(t, err, &vErr)
}

func TestTable_RowsDeterministicOrder(t *testing.T) {
	companyRatings := []types.CompanyRating{
		{CompanyID: "c2", CandidateID: "s1", Grade: types.GradeA},
		{CompanyID: "c1", CandidateID: "s1", Grade: types.GradeA},
		{CompanyID: "c1", CandidateID: "s2", Grade: types.GradeS},
	}
	candidateRatings := []types.CandidateRating{
		{CompanyID: "c2", CandidateID: "s1", Stars: 4},
		{CompanyID: "c1", CandidateID: "s1", Stars: 4},
		{CompanyID: "c1", CandidateID: "s2", Stars: 5},
	}

	table, err := Combine(companyRatings, candidateRatings, types.DefaultWeights)
	require.NoError(t, err)

	rows := table.Rows()
	require.Len(t, rows, 3)
	// Highest score first, then equal scores by ascending company id.
	assert.Equal(t, "s2", rows[0].CandidateID)
	assert.Equal(t, "c1", rows[1].CompanyID)
	assert.Equal(t, "c2", rows[2].CompanyID)

	// Same inputs produce the identical ordering on a second run.
	again, err := Combine(companyRatings, candidateRatings, types.DefaultWeights)
	require.NoError(t, err)
	assert.Equal(t, rows, again.Rows())
}
