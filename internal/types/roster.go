package types

// Company is a company registered to an event.
type Company struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
}

// Candidate is a person registered to an event. Only candidates marked
// attended participate in matching.
type Candidate struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Attended bool   `json:"attended"`
}
