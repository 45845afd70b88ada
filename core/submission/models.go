package submission

import "time"

// Acknowledgment records that a submitter has acknowledged an assignment.
// Records are append-only; they are never edited and only removed when the
// assignment itself is deleted.
type Acknowledgment struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment_id"`
	// SubmitterID is a user ID for Individual assignments and a group ID
	// for Group assignments.
	SubmitterID  string    `json:"submitter_id"`
	Acknowledged bool      `json:"acknowledged"` // always true once recorded
	Timestamp    time.Time `json:"timestamp"`    // UTC
}

// Progress is the derived submission state of one assignment. It is
// recomputed on every read and never cached.
type Progress struct {
	SubmittedCount   int `json:"submitted_count"`
	TotalSubmittable int `json:"total_submittable"`
	Percentage       int `json:"percentage"`
}
