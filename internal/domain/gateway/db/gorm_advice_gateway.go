package db

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"ecogarden-api/internal/domain/entity"
)

type GormAdviceGateway struct {
	DB *gorm.DB
}

var _ AdviceGateway = (*GormAdviceGateway)(nil)

func NewGormAdviceGateway(db *gorm.DB) *GormAdviceGateway {
	return &GormAdviceGateway{DB: db}
}

func (gateway *GormAdviceGateway) FindByID(ctx context.Context, id uint) (*entity.Advice, error) {
	var advice entity.Advice
	err := gateway.DB.WithContext(ctx).First(&advice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &advice, nil
}

// FindByMonth matches month as a whole element of the comma separated list, so 1 does not match 11
func (gateway *GormAdviceGateway) FindByMonth(ctx context.Context, month int) ([]entity.Advice, error) {
	advices := make([]entity.Advice, 0)
	err := gateway.DB.WithContext(ctx).
		Where("',' || month || ',' LIKE ?", "%,"+strconv.Itoa(month)+",%").
		Order("id").
		Find(&advices).Error
	if err != nil {
		return nil, err
	}
	return advices, nil
}

func (gateway *GormAdviceGateway) Create(ctx context.Context, advice *entity.Advice) error {
	return gateway.DB.WithContext(ctx).Create(advice).Error
}

func (gateway *GormAdviceGateway) Update(ctx context.Context, advice *entity.Advice) error {
	return gateway.DB.WithContext(ctx).Save(advice).Error
}

func (gateway *GormAdviceGateway) Delete(ctx context.Context, id uint) error {
	return gateway.DB.WithContext(ctx).Delete(&entity.Advice{}, id).Error
}
