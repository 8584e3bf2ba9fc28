package user

import (
	"context"

	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/model"
)

type UseCase interface {
	Create(ctx context.Context, request model.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id uint, request model.UpdateUserRequest) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}
