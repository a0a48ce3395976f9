package domain

import (
	"time"
)

// MatchStatus is the lifecycle state of a match, derived from its time
// window when the match is created.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusLive      MatchStatus = "LIVE"
	StatusCompleted MatchStatus = "COMPLETED"
)

// ClassifyStatus derives a match status from its time window and the
// current time. The start boundary is inclusive for LIVE; the end
// boundary is inclusive for COMPLETED, so a match ends exactly at
// endTime.
func ClassifyStatus(startTime, endTime, now time.Time) MatchStatus {
	if now.Before(startTime) {
		return StatusScheduled
	}
	if now.Before(endTime) {
		return StatusLive
	}
	return StatusCompleted
}

// Match is a scheduled, live, or completed sporting event. The status
// is a snapshot computed at creation time; it is not recomputed on
// read.
type Match struct {
	ID        string      `json:"id"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	HomeScore int         `json:"home_score"`
	AwayScore int         `json:"away_score"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// CreateMatchRequest is the caller-supplied shape for creating a match.
// Scores are pointers so that "absent" and "zero" are distinguishable.
type CreateMatchRequest struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	HomeScore *int      `json:"home_score,omitempty"`
	AwayScore *int      `json:"away_score,omitempty"`
}

// Validate checks the request shape. startTime must not be after
// endTime, and scores, when supplied, must be non-negative.
func (r CreateMatchRequest) Validate() error {
	if r.StartTime.IsZero() {
		return &ValidationError{Field: "start_time", Reason: "is required"}
	}
	if r.EndTime.IsZero() {
		return &ValidationError{Field: "end_time", Reason: "is required"}
	}
	if r.StartTime.After(r.EndTime) {
		return &ValidationError{Field: "start_time", Reason: "must not be after end_time"}
	}
	if r.HomeScore != nil && *r.HomeScore < 0 {
		return &ValidationError{Field: "home_score", Reason: "must be non-negative"}
	}
	if r.AwayScore != nil && *r.AwayScore < 0 {
		return &ValidationError{Field: "away_score", Reason: "must be non-negative"}
	}
	return nil
}
