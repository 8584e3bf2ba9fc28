package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecogarden-api/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return gateway.findOne(ctx, "id = ?", id)
}

func (gateway *GormUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return gateway.findOne(ctx, "email = ?", email)
}

func (gateway *GormUserGateway) FindByPseudo(ctx context.Context, pseudo string) (*entity.User, error) {
	return gateway.findOne(ctx, "pseudo = ?", pseudo)
}

func (gateway *GormUserGateway) FindDistinctCities(ctx context.Context) ([]string, error) {
	cities := make([]string, 0)
	err := gateway.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("city <> ''").
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (gateway *GormUserGateway) Create(ctx context.Context, user *entity.User) error {
	return gateway.DB.WithContext(ctx).Create(user).Error
}

func (gateway *GormUserGateway) Update(ctx context.Context, user *entity.User) error {
	return gateway.DB.WithContext(ctx).Save(user).Error
}

func (gateway *GormUserGateway) Delete(ctx context.Context, id uint) error {
	return gateway.DB.WithContext(ctx).Delete(&entity.User{}, id).Error
}

func (gateway *GormUserGateway) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
