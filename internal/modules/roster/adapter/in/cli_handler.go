package in

import (
	"context"

	"courtside/internal/modules/roster/dto"
	rosterin "courtside/internal/modules/roster/port/in"
)

type CLIHandler struct {
	usecase rosterin.Usecase
}

func NewCLIHandler(usecase rosterin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GetByUsername(ctx context.Context, username string) (dto.UserOutput, error) {
	return h.usecase.GetByUsername(ctx, username)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.UserOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Create(ctx context.Context, input dto.CreateUserInput) (dto.UserOutput, error) {
	return h.usecase.Create(ctx, input)
}
