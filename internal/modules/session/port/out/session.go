package out

import (
	"context"

	"courtside/internal/modules/session/domain"
)

type SessionStore interface {
	ListAll(ctx context.Context) ([]domain.Session, error)
	ListByCoach(ctx context.Context, coachID int64) ([]domain.Session, error)
	FindByID(ctx context.Context, id int64) (domain.Session, error)
	Create(ctx context.Context, session domain.Session) (int64, error)
	Update(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id int64) error
}

type ContentStore interface {
	ListBySession(ctx context.Context, sessionID int64) ([]domain.TrainingContent, error)
	FindByID(ctx context.Context, id int64) (domain.TrainingContent, error)
	CountBySession(ctx context.Context, sessionID int64) (int, error)
	Create(ctx context.Context, content domain.TrainingContent) (int64, error)
	Update(ctx context.Context, content domain.TrainingContent) error
	Delete(ctx context.Context, id int64) error
	DeleteBySession(ctx context.Context, sessionID int64) error
}
