package domain

import (
	"errors"
	"testing"
	"time"
)

func TestClassifyStatus_Boundaries(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want MatchStatus
	}{
		{"before start", start.Add(-time.Minute), StatusScheduled},
		{"just before start", start.Add(-time.Nanosecond), StatusScheduled},
		{"exactly at start", start, StatusLive},
		{"during match", start.Add(30 * time.Minute), StatusLive},
		{"just before end", end.Add(-time.Nanosecond), StatusLive},
		{"exactly at end", end, StatusCompleted},
		{"after end", end.Add(time.Hour), StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStatus(start, end, tt.now); got != tt.want {
				t.Errorf("ClassifyStatus(now=%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestClassifyStatus_ZeroLengthWindow(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// start == end: the match is COMPLETED the instant it starts.
	if got := ClassifyStatus(at, at, at); got != StatusCompleted {
		t.Errorf("ClassifyStatus at zero-length window = %v, want %v", got, StatusCompleted)
	}
	if got := ClassifyStatus(at, at, at.Add(-time.Second)); got != StatusScheduled {
		t.Errorf("ClassifyStatus before zero-length window = %v, want %v", got, StatusScheduled)
	}
}

func TestClassifyStatus_UsesInstantComparison(t *testing.T) {
	// Same instant in different zones must compare equal.
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	nowInOtherZone := start.In(time.FixedZone("UTC+5", 5*3600))

	if got := ClassifyStatus(start, end, nowInOtherZone); got != StatusLive {
		t.Errorf("ClassifyStatus with zone-shifted now = %v, want %v", got, StatusLive)
	}
}

func TestCreateMatchRequest_Validate(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	negative := -1

	tests := []struct {
		name    string
		req     CreateMatchRequest
		wantErr bool
	}{
		{"valid", CreateMatchRequest{StartTime: start, EndTime: end}, false},
		{"equal start and end", CreateMatchRequest{StartTime: start, EndTime: start}, false},
		{"missing start", CreateMatchRequest{EndTime: end}, true},
		{"missing end", CreateMatchRequest{StartTime: start}, true},
		{"start after end", CreateMatchRequest{StartTime: end, EndTime: start}, true},
		{"negative home score", CreateMatchRequest{StartTime: start, EndTime: end, HomeScore: &negative}, true},
		{"negative away score", CreateMatchRequest{StartTime: start, EndTime: end, AwayScore: &negative}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("Validate() returned %T, want *ValidationError", err)
				}
			}
		})
	}
}
