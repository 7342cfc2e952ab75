package in

import (
	"context"

	"courtside/internal/modules/template/dto"
	templatein "courtside/internal/modules/template/port/in"
)

type CLIHandler struct {
	usecase templatein.Usecase
}

func NewCLIHandler(usecase templatein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TemplateOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id int64) (dto.TemplateOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, input dto.CreateTemplateInput) (dto.TemplateOutput, error) {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Attach(ctx context.Context, sessionID, templateID int64) (dto.LinkOutput, error) {
	return h.usecase.Attach(ctx, sessionID, templateID)
}

func (h CLIHandler) Detach(ctx context.Context, linkID int64) error {
	return h.usecase.Detach(ctx, linkID)
}

func (h CLIHandler) ListForSession(ctx context.Context, sessionID int64) ([]dto.AttachedTemplate, error) {
	return h.usecase.ListForSession(ctx, sessionID)
}
