package domain

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(s) {
	case "active":
		return StatusActive, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown subscription status %q", s)
	}
}

// Subscription is a player's enrollment against one session. At most one
// exists per (user, session) pair. Completion is monotonic: CompletedAt is
// set once and never cleared.
type Subscription struct {
	ID           int64
	UserID       int64
	SessionID    int64
	SubscribedAt time.Time
	CompletedAt  time.Time
	Status       Status
	Notes        string
}

func (s Subscription) IsCompleted() bool { return !s.CompletedAt.IsZero() }
