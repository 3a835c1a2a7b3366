package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/tipaniya/hisaab/internal/farmer/domain"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, farmer *domain.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Farmer, error) {
	var farmer domain.Farmer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&farmer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &farmer, nil
}

func (r *repo) List(ctx context.Context) ([]domain.Farmer, error) {
	var farmers []domain.Farmer
	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&farmers).Error
	if err != nil {
		return nil, err
	}
	return farmers, nil
}
