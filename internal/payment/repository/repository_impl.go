package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/tipaniya/hisaab/internal/payment/domain"
)

const detailColumns = `p.id, p.farmer_id, p.user_id, p.amount, p.payment_date, p.remark,
	f.name AS farmer_name, u.full_name AS user_name`

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.PaymentDetail, error) {
	var detail domain.PaymentDetail
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+detailColumns+`
		 FROM payments p
		 JOIN farmers f ON p.farmer_id = f.id
		 JOIN users u ON p.user_id = u.id
		 WHERE p.id = ?`,
		id,
	).Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return &detail, nil
}

func (r *repo) ListByFarmer(ctx context.Context, farmerID snowflake.ID) ([]domain.PaymentDetail, error) {
	var details []domain.PaymentDetail
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+detailColumns+`
		 FROM payments p
		 JOIN farmers f ON p.farmer_id = f.id
		 JOIN users u ON p.user_id = u.id
		 WHERE p.farmer_id = ?
		 ORDER BY p.payment_date DESC`,
		farmerID,
	).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *repo) ListByAdmin(ctx context.Context, adminID snowflake.ID) ([]domain.PaymentDetail, error) {
	var details []domain.PaymentDetail
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+detailColumns+`
		 FROM payments p
		 JOIN farmers f ON p.farmer_id = f.id
		 JOIN users u ON p.user_id = u.id
		 WHERE u.id = ? OR u.admin_id = ?
		 ORDER BY p.payment_date DESC`,
		adminID,
		adminID,
	).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
