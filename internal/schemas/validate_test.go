package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SpecialInterviews_OK(t *testing.T) {
	doc := []byte(`[
		{"company_id": "c1", "candidate_id": "s1", "session_number": 1},
		{"company_id": "c2", "candidate_id": "s2", "session_number": 3}
	]`)
	assert.NoError(t, Validate(SpecialInterviewsSchema, doc))
}

func TestValidate_SpecialInterviews_EmptyListOK(t *testing.T) {
	assert.NoError(t, Validate(SpecialInterviewsSchema, []byte(`[]`)))
}

func TestValidate_SpecialInterviews_Violations(t *testing.T) {
	doc := []byte(`[
		{"company_id": "c1", "session_number": 0}
	]`)
	err := Validate(SpecialInterviewsSchema, doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidate_SpecialInterviews_RejectsExtraFields(t *testing.T) {
	doc := []byte(`[
		{"company_id": "c1", "candidate_id": "s1", "session_number": 1, "note": "vip"}
	]`)
	assert.Error(t, Validate(SpecialInterviewsSchema, doc))
}

func TestValidate_SchemaMissing(t *testing.T) {
	err := Validate("schemas/does_not_exist.schema.json", []byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema not found")
}
