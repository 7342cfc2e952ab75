package in

import (
	"context"

	"courtside/internal/modules/roster/dto"
)

type Usecase interface {
	GetByUsername(ctx context.Context, username string) (dto.UserOutput, error)
	List(ctx context.Context) ([]dto.UserOutput, error)
	Create(ctx context.Context, input dto.CreateUserInput) (dto.UserOutput, error)
}
