package advice

import (
	"context"

	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/model"
)

type UseCase interface {
	FindCurrentMonth(ctx context.Context) ([]entity.Advice, error)
	FindByMonth(ctx context.Context, month int) ([]entity.Advice, error)
	Create(ctx context.Context, request model.AdviceRequest) (*entity.Advice, error)
	Update(ctx context.Context, id uint, request model.AdviceRequest) (*entity.Advice, error)
	Delete(ctx context.Context, id uint) error
}
