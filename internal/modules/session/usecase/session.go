package usecase

import (
	"context"

	"courtside/internal/modules/session/domain"
	"courtside/internal/modules/session/dto"
	sessionin "courtside/internal/modules/session/port/in"
	sessionout "courtside/internal/modules/session/port/out"
	"courtside/internal/modules/session/service"
	"courtside/internal/platform/tx"
)

type Interactor struct {
	svc      *service.SessionService
	sessions sessionout.SessionStore
	content  sessionout.ContentStore
	tx       tx.Manager
}

func NewInteractor(svc *service.SessionService, sessions sessionout.SessionStore, content sessionout.ContentStore, txm tx.Manager) sessionin.Usecase {
	return &Interactor{svc: svc, sessions: sessions, content: content, tx: txm}
}

func (i *Interactor) ListAll(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(sessions), nil
}

func (i *Interactor) ListByCoach(ctx context.Context, coachID int64) ([]dto.SessionOutput, error) {
	sessions, err := i.sessions.ListByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}
	return toOutputs(sessions), nil
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.SessionDetailOutput, error) {
	session, err := i.sessions.FindByID(ctx, id)
	if err != nil {
		return dto.SessionDetailOutput{}, err
	}
	items, err := i.content.ListBySession(ctx, id)
	if err != nil {
		return dto.SessionDetailOutput{}, err
	}
	return dto.SessionDetailOutput{
		Session: toOutput(session),
		Content: toContentOutputs(items),
	}, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	session, err := service.NewSession(
		input.Fields.Title,
		input.Fields.Description,
		input.Fields.ScheduledDate,
		input.Fields.ScheduledTime,
		input.Fields.DurationMinutes,
		input.Fields.SkillLevel,
		input.CoachID,
	)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	created, err := i.svc.Create(ctx, session)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(created), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error) {
	session, err := service.NewSession(
		input.Fields.Title,
		input.Fields.Description,
		input.Fields.ScheduledDate,
		input.Fields.ScheduledTime,
		input.Fields.DurationMinutes,
		input.Fields.SkillLevel,
		0,
	)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session.ID = input.ID
	updated, err := i.svc.Update(ctx, session)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	return i.tx.Within(ctx, func(ctx context.Context) error {
		return i.svc.Delete(ctx, id)
	})
}

func (i *Interactor) ListContent(ctx context.Context, sessionID int64) ([]dto.ContentOutput, error) {
	items, err := i.content.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toContentOutputs(items), nil
}

func (i *Interactor) GetContent(ctx context.Context, id int64) (dto.ContentOutput, error) {
	item, err := i.content.FindByID(ctx, id)
	if err != nil {
		return dto.ContentOutput{}, err
	}
	return toContentOutput(item), nil
}

func (i *Interactor) AddContent(ctx context.Context, input dto.CreateContentInput) (dto.ContentOutput, error) {
	content, err := service.NewContent(
		input.SessionID,
		input.Fields.Type,
		input.Fields.Title,
		input.Fields.Description,
		input.Fields.DurationMinutes,
	)
	if err != nil {
		return dto.ContentOutput{}, err
	}
	created, err := i.svc.AppendContent(ctx, content)
	if err != nil {
		return dto.ContentOutput{}, err
	}
	return toContentOutput(created), nil
}

func (i *Interactor) UpdateContent(ctx context.Context, input dto.UpdateContentInput) (dto.ContentOutput, error) {
	content, err := service.NewContent(
		0,
		input.Fields.Type,
		input.Fields.Title,
		input.Fields.Description,
		input.Fields.DurationMinutes,
	)
	if err != nil {
		return dto.ContentOutput{}, err
	}
	content.ID = input.ID
	updated, err := i.svc.UpdateContent(ctx, content)
	if err != nil {
		return dto.ContentOutput{}, err
	}
	return toContentOutput(updated), nil
}

func (i *Interactor) DeleteContent(ctx context.Context, id int64) error {
	if _, err := i.content.FindByID(ctx, id); err != nil {
		return err
	}
	return i.content.Delete(ctx, id)
}

func toOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		ScheduledDate:   s.ScheduledDate,
		ScheduledTime:   s.ScheduledTime,
		DurationMinutes: s.DurationMinutes,
		SkillLevel:      string(s.SkillLevel),
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toOutputs(sessions []domain.Session) []dto.SessionOutput {
	outputs := make([]dto.SessionOutput, len(sessions))
	for n, s := range sessions {
		outputs[n] = toOutput(s)
	}
	return outputs
}

func toContentOutput(c domain.TrainingContent) dto.ContentOutput {
	return dto.ContentOutput{
		ID:              c.ID,
		SessionID:       c.SessionID,
		Type:            string(c.Type),
		Title:           c.Title,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		OrderIndex:      c.OrderIndex,
	}
}

func toContentOutputs(items []domain.TrainingContent) []dto.ContentOutput {
	outputs := make([]dto.ContentOutput, len(items))
	for n, c := range items {
		outputs[n] = toContentOutput(c)
	}
	return outputs
}
