package in

import (
	"context"

	"courtside/internal/modules/session/dto"
	sessionin "courtside/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListAll(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.ListAll(ctx)
}

func (h CLIHandler) ListByCoach(ctx context.Context, coachID int64) ([]dto.SessionOutput, error) {
	return h.usecase.ListByCoach(ctx, coachID)
}

func (h CLIHandler) Get(ctx context.Context, id int64) (dto.SessionDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) ListContent(ctx context.Context, sessionID int64) ([]dto.ContentOutput, error) {
	return h.usecase.ListContent(ctx, sessionID)
}

func (h CLIHandler) GetContent(ctx context.Context, id int64) (dto.ContentOutput, error) {
	return h.usecase.GetContent(ctx, id)
}

func (h CLIHandler) AddContent(ctx context.Context, input dto.CreateContentInput) (dto.ContentOutput, error) {
	return h.usecase.AddContent(ctx, input)
}

func (h CLIHandler) UpdateContent(ctx context.Context, input dto.UpdateContentInput) (dto.ContentOutput, error) {
	return h.usecase.UpdateContent(ctx, input)
}

func (h CLIHandler) DeleteContent(ctx context.Context, id int64) error {
	return h.usecase.DeleteContent(ctx, id)
}
