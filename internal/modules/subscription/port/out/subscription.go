package out

import (
	"context"
	"time"

	"courtside/internal/modules/subscription/domain"
)

type SubscriptionStore interface {
	Create(ctx context.Context, sub domain.Subscription) (int64, error)
	FindByUserAndSession(ctx context.Context, userID, sessionID int64) (domain.Subscription, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error)
	ListBySession(ctx context.Context, sessionID int64) ([]domain.Subscription, error)
	MarkCompleted(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	DeleteByUserAndSession(ctx context.Context, userID, sessionID int64) error
}
