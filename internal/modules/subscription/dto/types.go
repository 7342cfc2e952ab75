package dto

import (
	"time"

	sessiondto "courtside/internal/modules/session/dto"
)

type SubscriptionOutput struct {
	ID           int64
	UserID       int64
	SessionID    int64
	SubscribedAt time.Time
	CompletedAt  time.Time
	Status       string
	Notes        string
}

func (s SubscriptionOutput) IsCompleted() bool { return !s.CompletedAt.IsZero() }

// SessionView pairs a session with the viewing player's own subscription,
// when one exists. Built per listing request, never persisted.
type SessionView struct {
	Session      sessiondto.SessionOutput
	Subscription *SubscriptionOutput
}

func (v SessionView) IsSubscribed() bool { return v.Subscription != nil }

func (v SessionView) IsCompleted() bool {
	return v.Subscription != nil && v.Subscription.IsCompleted()
}

// Filter is the player-facing two-state listing toggle.
type Filter string

const (
	FilterMySubscriptions Filter = "my"
	FilterAllAvailable    Filter = "all"
)

func (f Filter) Toggle() Filter {
	if f == FilterMySubscriptions {
		return FilterAllAvailable
	}
	return FilterMySubscriptions
}

func (f Filter) Label() string {
	if f == FilterMySubscriptions {
		return "My Subscriptions"
	}
	return "All Available"
}

type ToggleOutput struct {
	Subscribed bool
	SessionID  int64
}
