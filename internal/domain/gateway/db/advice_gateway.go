package db

import (
	"context"

	"ecogarden-api/internal/domain/entity"
)

// AdviceGateway finders return nil without error when nothing matches
type AdviceGateway interface {
	FindByID(ctx context.Context, id uint) (*entity.Advice, error)
	FindByMonth(ctx context.Context, month int) ([]entity.Advice, error)

	Create(ctx context.Context, advice *entity.Advice) error
	Update(ctx context.Context, advice *entity.Advice) error
	Delete(ctx context.Context, id uint) error
}
