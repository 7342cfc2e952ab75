package in

import (
	"context"

	"courtside/internal/modules/subscription/dto"
)

type Usecase interface {
	// ListForPlayer returns every session annotated with the player's own
	// subscription, narrowed by the active filter.
	ListForPlayer(ctx context.Context, playerID int64, filter dto.Filter) ([]dto.SessionView, error)
	Toggle(ctx context.Context, userID, sessionID int64) (dto.ToggleOutput, error)
	MarkComplete(ctx context.Context, userID, sessionID int64) (dto.SubscriptionOutput, error)
	ListByUser(ctx context.Context, userID int64) ([]dto.SubscriptionOutput, error)
	ListBySession(ctx context.Context, sessionID int64) ([]dto.SubscriptionOutput, error)
	FindByUserAndSession(ctx context.Context, userID, sessionID int64) (dto.SubscriptionOutput, error)
}
