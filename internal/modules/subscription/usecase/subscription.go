package usecase

import (
	"context"

	sessionin "courtside/internal/modules/session/port/in"
	"courtside/internal/modules/subscription/domain"
	"courtside/internal/modules/subscription/dto"
	subscriptionin "courtside/internal/modules/subscription/port/in"
	subscriptionout "courtside/internal/modules/subscription/port/out"
	"courtside/internal/modules/subscription/service"
)

type Interactor struct {
	svc      *service.SubscriptionService
	store    subscriptionout.SubscriptionStore
	sessions sessionin.Usecase
}

func NewInteractor(svc *service.SubscriptionService, store subscriptionout.SubscriptionStore, sessions sessionin.Usecase) subscriptionin.Usecase {
	return &Interactor{svc: svc, store: store, sessions: sessions}
}

func (i *Interactor) ListForPlayer(ctx context.Context, playerID int64, filter dto.Filter) ([]dto.SessionView, error) {
	sessions, err := i.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := i.store.ListByUser(ctx, playerID)
	if err != nil {
		return nil, err
	}
	bySession := make(map[int64]domain.Subscription, len(subs))
	for _, sub := range subs {
		bySession[sub.SessionID] = sub
	}

	views := make([]dto.SessionView, 0, len(sessions))
	for _, session := range sessions {
		view := dto.SessionView{Session: session}
		if sub, ok := bySession[session.ID]; ok {
			out := toOutput(sub)
			view.Subscription = &out
		}
		if filter == dto.FilterMySubscriptions && view.Subscription == nil {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (i *Interactor) Toggle(ctx context.Context, userID, sessionID int64) (dto.ToggleOutput, error) {
	subscribed, err := i.svc.Toggle(ctx, userID, sessionID)
	if err != nil {
		return dto.ToggleOutput{}, err
	}
	return dto.ToggleOutput{Subscribed: subscribed, SessionID: sessionID}, nil
}

func (i *Interactor) MarkComplete(ctx context.Context, userID, sessionID int64) (dto.SubscriptionOutput, error) {
	sub, err := i.svc.MarkComplete(ctx, userID, sessionID)
	if err != nil {
		return dto.SubscriptionOutput{}, err
	}
	return toOutput(sub), nil
}

func (i *Interactor) ListByUser(ctx context.Context, userID int64) ([]dto.SubscriptionOutput, error) {
	subs, err := i.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOutputs(subs), nil
}

func (i *Interactor) ListBySession(ctx context.Context, sessionID int64) ([]dto.SubscriptionOutput, error) {
	subs, err := i.store.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toOutputs(subs), nil
}

func (i *Interactor) FindByUserAndSession(ctx context.Context, userID, sessionID int64) (dto.SubscriptionOutput, error) {
	sub, err := i.store.FindByUserAndSession(ctx, userID, sessionID)
	if err != nil {
		return dto.SubscriptionOutput{}, err
	}
	return toOutput(sub), nil
}

func toOutput(s domain.Subscription) dto.SubscriptionOutput {
	return dto.SubscriptionOutput{
		ID:           s.ID,
		UserID:       s.UserID,
		SessionID:    s.SessionID,
		SubscribedAt: s.SubscribedAt,
		CompletedAt:  s.CompletedAt,
		Status:       string(s.Status),
		Notes:        s.Notes,
	}
}

func toOutputs(subs []domain.Subscription) []dto.SubscriptionOutput {
	outputs := make([]dto.SubscriptionOutput, len(subs))
	for n, s := range subs {
		outputs[n] = toOutput(s)
	}
	return outputs
}
