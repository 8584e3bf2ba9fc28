package db

import (
	"context"

	"ecogarden-api/internal/domain/entity"
)

// UserGateway finders return nil without error when nothing matches
type UserGateway interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPseudo(ctx context.Context, pseudo string) (*entity.User, error)
	// FindDistinctCities lists the non empty profile cities
	FindDistinctCities(ctx context.Context) ([]string, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint) error
}
