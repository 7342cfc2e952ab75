package usecase

import (
	"context"
	"fmt"

	rosterdomain "courtside/internal/modules/roster/domain"
	sessiondomain "courtside/internal/modules/session/domain"
	sessionin "courtside/internal/modules/session/port/in"
	"courtside/internal/modules/template/domain"
	"courtside/internal/modules/template/dto"
	templatein "courtside/internal/modules/template/port/in"
	templateout "courtside/internal/modules/template/port/out"
	"courtside/internal/platform/clock"
	apperrors "courtside/internal/platform/errors"
	"courtside/internal/platform/tx"
)

type Interactor struct {
	clock     clock.Clock
	templates templateout.TemplateStore
	links     templateout.LinkStore
	sessions  sessionin.Usecase
	tx        tx.Manager
}

func NewInteractor(clk clock.Clock, templates templateout.TemplateStore, links templateout.LinkStore, sessions sessionin.Usecase, txm tx.Manager) templatein.Usecase {
	return &Interactor{clock: clk, templates: templates, links: links, sessions: sessions, tx: txm}
}

func (i *Interactor) List(ctx context.Context) ([]dto.TemplateOutput, error) {
	templates, err := i.templates.List(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.TemplateOutput, len(templates))
	for n, t := range templates {
		outputs[n] = toOutput(t)
	}
	return outputs, nil
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.TemplateOutput, error) {
	template, err := i.templates.FindByID(ctx, id)
	if err != nil {
		return dto.TemplateOutput{}, err
	}
	return toOutput(template), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateTemplateInput) (dto.TemplateOutput, error) {
	template := domain.TrainingTemplate{
		Title:           input.Title,
		Description:     input.Description,
		Type:            sessiondomain.ContentType(input.Type),
		DurationMinutes: input.DurationMinutes,
		SkillLevel:      rosterdomain.SkillLevel(input.SkillLevel),
		CreatedBy:       input.CreatedBy,
		CreatedAt:       i.clock.Now(),
	}
	if err := template.Validate(); err != nil {
		return dto.TemplateOutput{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	id, err := i.templates.Insert(ctx, template)
	if err != nil {
		return dto.TemplateOutput{}, err
	}
	template.ID = id
	return toOutput(template), nil
}

// Delete removes the template and every session link pointing at it in one
// transactional boundary.
func (i *Interactor) Delete(ctx context.Context, id int64) error {
	if _, err := i.templates.FindByID(ctx, id); err != nil {
		return err
	}
	return i.tx.Within(ctx, func(ctx context.Context) error {
		if err := i.links.DeleteByTemplate(ctx, id); err != nil {
			return err
		}
		return i.templates.Delete(ctx, id)
	})
}

func (i *Interactor) Attach(ctx context.Context, sessionID, templateID int64) (dto.LinkOutput, error) {
	if _, err := i.sessions.Get(ctx, sessionID); err != nil {
		return dto.LinkOutput{}, err
	}
	if _, err := i.templates.FindByID(ctx, templateID); err != nil {
		return dto.LinkOutput{}, err
	}
	count, err := i.links.CountBySession(ctx, sessionID)
	if err != nil {
		return dto.LinkOutput{}, err
	}
	link := domain.SessionTrainingLink{
		SessionID:  sessionID,
		TemplateID: templateID,
		OrderIndex: count + 1,
		CreatedAt:  i.clock.Now(),
	}
	id, err := i.links.Insert(ctx, link)
	if err != nil {
		return dto.LinkOutput{}, err
	}
	link.ID = id
	return toLinkOutput(link), nil
}

func (i *Interactor) Detach(ctx context.Context, linkID int64) error {
	return i.links.Delete(ctx, linkID)
}

func (i *Interactor) ListForSession(ctx context.Context, sessionID int64) ([]dto.AttachedTemplate, error) {
	links, err := i.links.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	attached := make([]dto.AttachedTemplate, 0, len(links))
	for _, link := range links {
		template, err := i.templates.FindByID(ctx, link.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("resolve template %d: %w", link.TemplateID, err)
		}
		attached = append(attached, dto.AttachedTemplate{
			Link:     toLinkOutput(link),
			Template: toOutput(template),
		})
	}
	return attached, nil
}

func toOutput(t domain.TrainingTemplate) dto.TemplateOutput {
	return dto.TemplateOutput{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Type:            string(t.Type),
		DurationMinutes: t.DurationMinutes,
		SkillLevel:      string(t.SkillLevel),
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}

func toLinkOutput(l domain.SessionTrainingLink) dto.LinkOutput {
	return dto.LinkOutput{
		ID:         l.ID,
		SessionID:  l.SessionID,
		TemplateID: l.TemplateID,
		OrderIndex: l.OrderIndex,
		CreatedAt:  l.CreatedAt,
	}
}
