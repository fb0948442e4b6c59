package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

func TestPrintSchedule(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSchedule([]types.SessionAssignment{
		{SessionNumber: 1, CompanyID: "c1", CandidateIDs: []string{"s1", "s2"}, SpecialIDs: []string{"s2"}},
		{SessionNumber: 2, CompanyID: "c2", CandidateIDs: []string{"s1"}},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCHING SCHEDULE")
	assert.Contains(t, out, "Session 1")
	assert.Contains(t, out, "Session 2")
	assert.Contains(t, out, "special: s2")
	assert.Contains(t, out, "Total seats filled: 3")
}

func TestPrintSchedule_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSchedule(nil)
	assert.Contains(t, buf.String(), "No assignments produced")
}

func TestGroupAssignments(t *testing.T) {
	got := GroupAssignments([]types.MatchingResult{
		{SessionNumber: 1, CompanyID: "c1", CandidateID: "s1"},
		{SessionNumber: 1, CompanyID: "c1", CandidateID: "s2", IsSpecialInterview: true},
		{SessionNumber: 1, CompanyID: "c2", CandidateID: "s3"},
		{SessionNumber: 2, CompanyID: "c1", CandidateID: "s3"},
	})

	assert.Equal(t, []types.SessionAssignment{
		{SessionNumber: 1, CompanyID: "c1", CandidateIDs: []string{"s1", "s2"}, SpecialIDs: []string{"s2"}},
		{SessionNumber: 1, CompanyID: "c2", CandidateIDs: []string{"s3"}},
		{SessionNumber: 2, CompanyID: "c1", CandidateIDs: []string{"s3"}},
	}, got)
}

func TestGroupAssignments_Empty(t *testing.T) {
	assert.Empty(t, GroupAssignments(nil))
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	score := 0.85
	NewPrinter(&buf).PrintResults([]types.MatchingResult{
		{SessionNumber: 1, CompanyID: "c1", CompanyName: "Acme", CandidateID: "s1", CandidateName: "Sato", MatchScore: &score},
		{SessionNumber: 1, CompanyID: "c2", CandidateID: "s2", IsSpecialInterview: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Sato")
	assert.Contains(t, out, "(0.85)")
	assert.Contains(t, out, "*special")
	// Falls back to ids when display names are missing.
	assert.Contains(t, out, "c2")
}
