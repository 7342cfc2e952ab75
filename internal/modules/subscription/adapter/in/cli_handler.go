package in

import (
	"context"

	"courtside/internal/modules/subscription/dto"
	subscriptionin "courtside/internal/modules/subscription/port/in"
)

type CLIHandler struct {
	usecase subscriptionin.Usecase
}

func NewCLIHandler(usecase subscriptionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListForPlayer(ctx context.Context, playerID int64, filter dto.Filter) ([]dto.SessionView, error) {
	return h.usecase.ListForPlayer(ctx, playerID, filter)
}

func (h CLIHandler) Toggle(ctx context.Context, userID, sessionID int64) (dto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, userID, sessionID)
}

func (h CLIHandler) MarkComplete(ctx context.Context, userID, sessionID int64) (dto.SubscriptionOutput, error) {
	return h.usecase.MarkComplete(ctx, userID, sessionID)
}

func (h CLIHandler) ListByUser(ctx context.Context, userID int64) ([]dto.SubscriptionOutput, error) {
	return h.usecase.ListByUser(ctx, userID)
}

func (h CLIHandler) ListBySession(ctx context.Context, sessionID int64) ([]dto.SubscriptionOutput, error) {
	return h.usecase.ListBySession(ctx, sessionID)
}

func (h CLIHandler) FindByUserAndSession(ctx context.Context, userID, sessionID int64) (dto.SubscriptionOutput, error) {
	return h.usecase.FindByUserAndSession(ctx, userID, sessionID)
}
