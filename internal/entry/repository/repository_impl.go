package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/tipaniya/hisaab/internal/entry/domain"
)

const detailColumns = `he.id, he.farmer_id, he.service_id, he.user_id,
	f.name AS farmer_name, s.type AS service_type,
	he.hours, s.rate, he.amount_received, he.remark, he.entry_date`

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, entry *domain.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repo) ListByUser(ctx context.Context, userID snowflake.ID) ([]domain.EntryDetail, error) {
	var details []domain.EntryDetail
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+detailColumns+`
		 FROM hisaab_entries he
		 JOIN farmers f ON he.farmer_id = f.id
		 JOIN services s ON he.service_id = s.id
		 WHERE he.user_id = ?
		 ORDER BY he.entry_date DESC`,
		userID,
	).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *repo) ListByFarmerAndUser(ctx context.Context, farmerID, userID snowflake.ID) ([]domain.EntryDetail, error) {
	var details []domain.EntryDetail
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+detailColumns+`
		 FROM hisaab_entries he
		 JOIN farmers f ON he.farmer_id = f.id
		 JOIN services s ON he.service_id = s.id
		 WHERE he.farmer_id = ? AND he.user_id = ?
		 ORDER BY he.entry_date DESC`,
		farmerID,
		userID,
	).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *repo) ListVisible(ctx context.Context, farmerID snowflake.ID, vis domain.Visibility) ([]domain.EntryDetail, error) {
	var details []domain.EntryDetail

	query := `SELECT ` + detailColumns + `
		 FROM hisaab_entries he
		 JOIN farmers f ON he.farmer_id = f.id
		 JOIN services s ON he.service_id = s.id
		 JOIN users u ON he.user_id = u.id
		 WHERE he.farmer_id = ?`

	args := []any{farmerID}
	if vis.IncludeReports {
		query += ` AND (he.user_id = ? OR u.admin_id = ?)`
		args = append(args, vis.RequesterID, vis.RequesterID)
	} else {
		query += ` AND he.user_id = ?`
		args = append(args, vis.RequesterID)
	}
	query += ` ORDER BY he.entry_date DESC`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
