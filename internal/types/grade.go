// Package types provides type definitions for the domain records used throughout the matching engine.
package types

import (
	"fmt"
	"math"
)

// Grade is a recruiter's letter evaluation of a candidate.
type Grade string

// Letter grades in descending order of quality.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Numeric bounds of the grade scale (C=1 .. S=4) and the candidate
// star-rating scale (1 .. 5).
const (
	GradeMin = 1
	GradeMax = 4
	StarMin  = 1
	StarMax  = 5
)

// IsValid reports whether g is one of the four letter grades.
func (g Grade) IsValid() bool {
	switch g {
	case GradeS, GradeA, GradeB, GradeC:
		return true
	default:
		return false
	}
}

func (g Grade) String() string {
	return string(g)
}

// Number converts a grade to its numeric value (S=4, A=3, B=2, C=1).
// Returns 0 for an invalid grade.
func (g Grade) Number() int {
	switch g {
	case GradeS:
		return 4
	case GradeA:
		return 3
	case GradeB:
		return 2
	case GradeC:
		return 1
	default:
		return 0
	}
}

// GradeFromNumber converts a numeric value back to a letter grade.
// Values outside 1..4 are a validation error.
func GradeFromNumber(n int) (Grade, error) {
	switch n {
	case 4:
		return GradeS, nil
	case 3:
		return GradeA, nil
	case 2:
		return GradeB, nil
	case 1:
		return GradeC, nil
	default:
		return "", &ValidationError{Field: "grade", Message: fmt.Sprintf("numeric grade out of range: %d (must be 1-4)", n)}
	}
}

// GradeFromScore snaps an arithmetic mean of numeric grades to the nearest
// letter grade. Halves round up, so a 2.5 average becomes an A rather than
// a B. Scores outside the 1..4 range are a validation error.
func GradeFromScore(score float64) (Grade, error) {
	if score < GradeMin || score > GradeMax {
		return "", &ValidationError{Field: "grade", Message: fmt.Sprintf("grade score out of range: %g (must be within 1-4)", score)}
	}
	return GradeFromNumber(int(math.Round(score)))
}

// NormalizeGrade maps the 1..4 grade scale onto [0, 1].
func NormalizeGrade(g Grade) float64 {
	return float64(g.Number()-GradeMin) / float64(GradeMax-GradeMin)
}

// NormalizeStars maps the 1..5 star scale onto [0, 1].
func NormalizeStars(stars int) float64 {
	return float64(stars-StarMin) / float64(StarMax-StarMin)
}
