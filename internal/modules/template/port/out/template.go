package out

import (
	"context"

	"courtside/internal/modules/template/domain"
)

type TemplateStore interface {
	Insert(ctx context.Context, template domain.TrainingTemplate) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.TrainingTemplate, error)
	List(ctx context.Context) ([]domain.TrainingTemplate, error)
	Delete(ctx context.Context, id int64) error
}

type LinkStore interface {
	Insert(ctx context.Context, link domain.SessionTrainingLink) (int64, error)
	ListBySession(ctx context.Context, sessionID int64) ([]domain.SessionTrainingLink, error)
	CountBySession(ctx context.Context, sessionID int64) (int, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTemplate(ctx context.Context, templateID int64) error
}
