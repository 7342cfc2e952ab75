package in

import (
	"context"

	"courtside/internal/modules/template/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.TemplateOutput, error)
	Get(ctx context.Context, id int64) (dto.TemplateOutput, error)
	Create(ctx context.Context, input dto.CreateTemplateInput) (dto.TemplateOutput, error)
	Delete(ctx context.Context, id int64) error

	// Attach links a template into a session's plan at the next position.
	Attach(ctx context.Context, sessionID, templateID int64) (dto.LinkOutput, error)
	Detach(ctx context.Context, linkID int64) error
	ListForSession(ctx context.Context, sessionID int64) ([]dto.AttachedTemplate, error)
}
