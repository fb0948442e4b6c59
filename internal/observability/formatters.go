// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSchedule outputs a per-session summary of the computed assignments.
func (p *Printer) PrintSchedule(assignments []types.SessionAssignment) {
	if len(assignments) == 0 {
		p.printBox("MATCHING SCHEDULE", "No assignments produced")
		return
	}

	var sb strings.Builder
	currentSession := 0
	totalSeats := 0
	for _, a := range assignments {
		if a.SessionNumber != currentSession {
			if currentSession != 0 {
				sb.WriteString("\n")
			}
			currentSession = a.SessionNumber
			sb.WriteString(fmt.Sprintf("Session %d\n", currentSession))
		}
		seats := strings.Join(a.CandidateIDs, ", ")
		sb.WriteString(fmt.Sprintf("  %s: %s", a.CompanyID, seats))
		if len(a.SpecialIDs) > 0 {
			sb.WriteString(fmt.Sprintf("  [special: %s]", strings.Join(a.SpecialIDs, ", ")))
		}
		sb.WriteString("\n")
		totalSeats += len(a.CandidateIDs)
	}
	sb.WriteString(fmt.Sprintf("\nTotal seats filled: %d", totalSeats))

	p.printBox("MATCHING SCHEDULE", sb.String())
}

// GroupAssignments regroups flat result rows, already ordered by
// (session, company, candidate), into per-table assignments for PrintSchedule.
func GroupAssignments(results []types.MatchingResult) []types.SessionAssignment {
	var out []types.SessionAssignment
	for _, r := range results {
		n := len(out)
		if n == 0 || out[n-1].SessionNumber != r.SessionNumber || out[n-1].CompanyID != r.CompanyID {
			out = append(out, types.SessionAssignment{SessionNumber: r.SessionNumber, CompanyID: r.CompanyID})
			n++
		}
		out[n-1].CandidateIDs = append(out[n-1].CandidateIDs, r.CandidateID)
		if r.IsSpecialInterview {
			out[n-1].SpecialIDs = append(out[n-1].SpecialIDs, r.CandidateID)
		}
	}
	return out
}

// PrintResults outputs stored assignment rows with their recomputed scores.
func (p *Printer) PrintResults(results []types.MatchingResult) {
	if len(results) == 0 {
		p.printBox("MATCHING RESULTS", "No results")
		return
	}

	var sb strings.Builder
	for _, r := range results {
		company := r.CompanyName
		if company == "" {
			company = r.CompanyID
		}
		candidate := r.CandidateName
		if candidate == "" {
			candidate = r.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s ↔ %s", r.SessionNumber, company, candidate))
		if r.MatchScore != nil {
			sb.WriteString(fmt.Sprintf("  (%.2f)", *r.MatchScore))
		}
		if r.IsSpecialInterview {
			sb.WriteString("  *special")
		}
		sb.WriteString("\n")
	}

	p.printBox("MATCHING RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}
