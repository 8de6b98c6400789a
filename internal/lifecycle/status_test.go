package lifecycle_test

import (
	"testing"

	"github.com/worknow-dev/worknow/internal/lifecycle"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    lifecycle.Status
		wantErr bool
	}{
		{"PENDING", lifecycle.StatusPending, false},
		{"UNDER_REVIEW", lifecycle.StatusUnderReview, false},
		{"ACCEPTED", lifecycle.StatusAccepted, false},
		{"REJECTED", lifecycle.StatusRejected, false},
		{"DONE", lifecycle.StatusDone, false},
		{"NOT_DONE", lifecycle.StatusNotDone, false},
		{"pending", "", true},
		{"Accepted", "", true},
		{"", "", true},
		{"CANCELLED", "", true},
	}

	for _, tt := range tests {
		got, err := lifecycle.ParseStatus(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePostingKind(t *testing.T) {
	tests := []struct {
		input   string
		want    lifecycle.PostingKind
		wantErr bool
	}{
		{"job", lifecycle.KindJob, false},
		{"project", lifecycle.KindProject, false},
		{"Job", "", true},
		{"gig", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := lifecycle.ParsePostingKind(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePostingKind(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePostingKind(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePostingKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsTransitionAllowed(t *testing.T) {
	tests := []struct {
		name string
		from lifecycle.Status
		to   lifecycle.Status
		want bool
	}{
		{"pending to under review", lifecycle.StatusPending, lifecycle.StatusUnderReview, true},
		{"pending to accepted", lifecycle.StatusPending, lifecycle.StatusAccepted, true},
		{"pending to rejected", lifecycle.StatusPending, lifecycle.StatusRejected, true},
		{"under review to accepted", lifecycle.StatusUnderReview, lifecycle.StatusAccepted, true},
		{"under review to rejected", lifecycle.StatusUnderReview, lifecycle.StatusRejected, true},
		{"accepted to done", lifecycle.StatusAccepted, lifecycle.StatusDone, true},
		{"accepted to not done", lifecycle.StatusAccepted, lifecycle.StatusNotDone, true},
		{"done to not done", lifecycle.StatusDone, lifecycle.StatusNotDone, true},
		{"not done to done", lifecycle.StatusNotDone, lifecycle.StatusDone, true},

		{"pending to done", lifecycle.StatusPending, lifecycle.StatusDone, false},
		{"under review to pending", lifecycle.StatusUnderReview, lifecycle.StatusPending, false},
		{"under review to done", lifecycle.StatusUnderReview, lifecycle.StatusDone, false},
		{"accepted to rejected", lifecycle.StatusAccepted, lifecycle.StatusRejected, false},
		{"accepted to pending", lifecycle.StatusAccepted, lifecycle.StatusPending, false},
		{"rejected to accepted", lifecycle.StatusRejected, lifecycle.StatusAccepted, false},
		{"rejected to under review", lifecycle.StatusRejected, lifecycle.StatusUnderReview, false},
		{"rejected to done", lifecycle.StatusRejected, lifecycle.StatusDone, false},
		{"done to accepted", lifecycle.StatusDone, lifecycle.StatusAccepted, false},
		{"done to done", lifecycle.StatusDone, lifecycle.StatusDone, false},
		{"pending to pending", lifecycle.StatusPending, lifecycle.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lifecycle.IsTransitionAllowed(tt.from, tt.to); got != tt.want {
				t.Errorf("IsTransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsReviewable(t *testing.T) {
	reviewable := map[lifecycle.Status]bool{
		lifecycle.StatusPending:     true,
		lifecycle.StatusUnderReview: true,
		lifecycle.StatusAccepted:    false,
		lifecycle.StatusRejected:    false,
		lifecycle.StatusDone:        false,
		lifecycle.StatusNotDone:     false,
	}
	for status, want := range reviewable {
		if got := lifecycle.IsReviewable(status); got != want {
			t.Errorf("IsReviewable(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestIsDecided(t *testing.T) {
	decided := map[lifecycle.Status]bool{
		lifecycle.StatusPending:     false,
		lifecycle.StatusUnderReview: false,
		lifecycle.StatusAccepted:    true,
		lifecycle.StatusRejected:    true,
		lifecycle.StatusDone:        false,
		lifecycle.StatusNotDone:     false,
	}
	for status, want := range decided {
		if got := lifecycle.IsDecided(status); got != want {
			t.Errorf("IsDecided(%s) = %v, want %v", status, got, want)
		}
	}
}
