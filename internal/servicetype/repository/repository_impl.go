package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/tipaniya/hisaab/internal/servicetype/domain"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, serviceType *domain.ServiceType) error {
	return r.db.WithContext(ctx).Create(serviceType).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.ServiceType, error) {
	var serviceType domain.ServiceType
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &serviceType, nil
}

func (r *repo) List(ctx context.Context) ([]domain.ServiceType, error) {
	var serviceTypes []domain.ServiceType
	err := r.db.WithContext(ctx).
		Order("type asc").
		Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}
