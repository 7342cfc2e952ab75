package service

import (
	"context"
	"errors"
	"fmt"

	"courtside/internal/modules/subscription/domain"
	subscriptionout "courtside/internal/modules/subscription/port/out"
	"courtside/internal/platform/clock"
	apperrors "courtside/internal/platform/errors"
)

// SubscriptionService owns the subscribe/complete rules. Toggle and
// MarkComplete are idempotent in the sense the UI needs: repeating an
// action never corrupts state, it either flips or reports why not.
type SubscriptionService struct {
	clock clock.Clock
	store subscriptionout.SubscriptionStore
}

func NewSubscriptionService(clock clock.Clock, store subscriptionout.SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{clock: clock, store: store}
}

// Toggle subscribes when no subscription exists and deletes the existing one
// otherwise. There is no soft-cancel.
func (s *SubscriptionService) Toggle(ctx context.Context, userID, sessionID int64) (bool, error) {
	existing, err := s.store.FindByUserAndSession(ctx, userID, sessionID)
	switch {
	case err == nil:
		if err := s.store.Delete(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("unsubscribe: %w", err)
		}
		return false, nil
	case errors.Is(err, apperrors.ErrNotFound):
		sub := domain.Subscription{
			UserID:       userID,
			SessionID:    sessionID,
			SubscribedAt: s.clock.Now(),
			Status:       domain.StatusActive,
		}
		if _, err := s.store.Create(ctx, sub); err != nil {
			return false, fmt.Errorf("subscribe: %w", err)
		}
		return true, nil
	default:
		return false, err
	}
}

// MarkComplete sets completed_at once. A missing subscription and an already
// completed one are both reported without touching the store.
func (s *SubscriptionService) MarkComplete(ctx context.Context, userID, sessionID int64) (domain.Subscription, error) {
	sub, err := s.store.FindByUserAndSession(ctx, userID, sessionID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.Subscription{}, apperrors.ErrNotSubscribed
	}
	if err != nil {
		return domain.Subscription{}, err
	}
	if sub.IsCompleted() {
		return domain.Subscription{}, apperrors.ErrAlreadyCompleted
	}
	now := s.clock.Now()
	if err := s.store.MarkCompleted(ctx, sub.ID, now); err != nil {
		return domain.Subscription{}, fmt.Errorf("mark completed: %w", err)
	}
	sub.CompletedAt = now
	sub.Status = domain.StatusCompleted
	return sub, nil
}
