package usecase

import (
	"context"
	"fmt"

	"courtside/internal/modules/roster/domain"
	"courtside/internal/modules/roster/dto"
	rosterin "courtside/internal/modules/roster/port/in"
	rosterout "courtside/internal/modules/roster/port/out"
	"courtside/internal/platform/clock"
)

type Interactor struct {
	clock clock.Clock
	store rosterout.UserStore
}

func NewInteractor(clock clock.Clock, store rosterout.UserStore) rosterin.Usecase {
	return &Interactor{clock: clock, store: store}
}

func (i *Interactor) GetByUsername(ctx context.Context, username string) (dto.UserOutput, error) {
	if username == "" {
		return dto.UserOutput{}, fmt.Errorf("username is required")
	}
	user, err := i.store.FindByUsername(ctx, username)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.UserOutput, len(users))
	for n, u := range users {
		outputs[n] = toOutput(u)
	}
	return outputs, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateUserInput) (dto.UserOutput, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return dto.UserOutput{}, err
	}
	level, err := domain.ParseSkillLevel(input.SkillLevel)
	if err != nil {
		return dto.UserOutput{}, err
	}
	now := i.clock.Now()
	user := domain.User{
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Role:        role,
		SkillLevel:  level,
		Goals:       input.Goals,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := user.Validate(); err != nil {
		return dto.UserOutput{}, err
	}
	id, err := i.store.Create(ctx, user)
	if err != nil {
		return dto.UserOutput{}, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return toOutput(user), nil
}

func toOutput(u domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		SkillLevel:  string(u.SkillLevel),
		Goals:       u.Goals,
	}
}
