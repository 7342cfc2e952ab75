package in

import (
	"context"

	"courtside/internal/modules/session/dto"
)

type Usecase interface {
	ListAll(ctx context.Context) ([]dto.SessionOutput, error)
	ListByCoach(ctx context.Context, coachID int64) ([]dto.SessionOutput, error)
	Get(ctx context.Context, id int64) (dto.SessionDetailOutput, error)
	Create(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error)
	Update(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error)
	Delete(ctx context.Context, id int64) error

	ListContent(ctx context.Context, sessionID int64) ([]dto.ContentOutput, error)
	GetContent(ctx context.Context, id int64) (dto.ContentOutput, error)
	AddContent(ctx context.Context, input dto.CreateContentInput) (dto.ContentOutput, error)
	UpdateContent(ctx context.Context, input dto.UpdateContentInput) (dto.ContentOutput, error)
	DeleteContent(ctx context.Context, id int64) error
}
