package domain

import "time"

// JobStatus represents the lifecycle state of an async submission.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusSuccess    JobStatus = "success"
	JobStatusError      JobStatus = "error"
)

// RecordStatus represents the lifecycle state of a persisted submission.
type RecordStatus string

const (
	RecordStatusProcessing RecordStatus = "processing"
	RecordStatusCompleted  RecordStatus = "completed"
	RecordStatusError      RecordStatus = "error"
)

// Participant is one identified (or partially identified) meeting attendee.
// Name may be null when the speaker could not be identified in the audio.
type Participant struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// Decision is one decision extracted from a meeting, with optional reasoning.
type Decision struct {
	Description string  `json:"description"`
	Context     *string `json:"context"`
}

// ActionItem is one task assigned during a meeting.
type ActionItem struct {
	Task     string  `json:"task"`
	Assignee *string `json:"assignee"`
	Deadline *string `json:"deadline"`
}

// MeetingSummary is the structured result of one pipeline run.
//
// The optional slice fields distinguish nil ("not found in the transcript")
// from an empty slice ("explicitly none"); both shapes survive JSON
// round-trips as null vs [].
type MeetingSummary struct {
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Participants []Participant `json:"participants"`
	KeyPoints    []string      `json:"key_points"`
	Decisions    []Decision    `json:"decisions"`
	ActionItems  []ActionItem  `json:"action_items"`
	Transcript   string        `json:"transcript"`
}

// JobState is the ephemeral progress entry for one async submission.
// Result is present iff Status is success; Error iff Status is error.
type JobState struct {
	Status JobStatus       `json:"status"`
	Result *MeetingSummary `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// JobAccepted is the receipt returned by an async submission. RecordID lets
// callers fall back to the durable record when the job entry is gone
// (process restart).
type JobAccepted struct {
	JobID    string `json:"job_id"`
	RecordID string `json:"record_id"`
}

// Record is the durable row covering one submission's full lifecycle.
type Record struct {
	ID               string       `json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	OriginalFilename string       `json:"original_filename"`
	DisplayName      string       `json:"display_name"`
	Model            string       `json:"model"`
	Status           RecordStatus `json:"status"`
	Transcript       *string      `json:"transcript"`
	SummaryJSON      *string      `json:"summary_json"`
	Error            *string      `json:"error"`
}

// RecordListItem is the listing projection of a Record, without the
// potentially large transcript and summary payloads.
type RecordListItem struct {
	ID               string       `json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	OriginalFilename string       `json:"original_filename"`
	DisplayName      string       `json:"display_name"`
	Model            string       `json:"model"`
	Status           RecordStatus `json:"status"`
	Error            *string      `json:"error,omitempty"`
}

// RecordPage is one page of records plus the total count.
type RecordPage struct {
	Items  []RecordListItem `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
