package out

import (
	"context"

	"courtside/internal/modules/roster/domain"
)

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user domain.User) (int64, error)
}
