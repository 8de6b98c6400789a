// Package lifecycle implements the application lifecycle: the candidacy state
// machine, the transition engine, the completed-work projector and the unread
// notification counters.
//
// Valid status graph:
//
//	Pending ──► UnderReview ──► Accepted ──► Done
//	    │            │              │          ▲
//	    │            │              ▼          │
//	    └────────────┴──► Rejected  NotDone ◄──┘
//
// Rejected is terminal. Accepted candidacies move between Done and NotDone as
// the applicant confirms or retracts completion.
package lifecycle

import "fmt"

// Status values are stored verbatim in the applications.status column.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusAccepted    Status = "ACCEPTED"
	StatusRejected    Status = "REJECTED"
	StatusDone        Status = "DONE"
	StatusNotDone     Status = "NOT_DONE"
)

// PostingKind distinguishes the two posting tables an Application can target.
type PostingKind string

const (
	KindJob     PostingKind = "job"
	KindProject PostingKind = "project"
)

// Role is the side of a candidacy an account acts from.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleOwner     Role = "owner"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:     {StatusUnderReview, StatusAccepted, StatusRejected},
	StatusUnderReview: {StatusAccepted, StatusRejected},
	StatusAccepted:    {StatusDone, StatusNotDone},
	StatusDone:        {StatusNotDone},
	StatusNotDone:     {StatusDone},
	// REJECTED is terminal: no outgoing transitions.
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusUnderReview, StatusAccepted, StatusRejected, StatusDone, StatusNotDone:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// ParsePostingKind converts a raw string to a PostingKind.
func ParsePostingKind(s string) (PostingKind, error) {
	k := PostingKind(s)
	if k == KindJob || k == KindProject {
		return k, nil
	}
	return "", fmt.Errorf("unknown posting kind %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsReviewable returns true while the posting owner may still act on the
// candidacy.
func IsReviewable(s Status) bool {
	return s == StatusPending || s == StatusUnderReview
}

// IsDecided returns true once the owner has reached a verdict; these are the
// statuses the applicant is notified about.
func IsDecided(s Status) bool {
	return s == StatusAccepted || s == StatusRejected
}
