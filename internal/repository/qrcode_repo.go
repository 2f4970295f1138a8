package repository

import (
	"context"
	"time"

	"qrgen/internal/domain"

	"gorm.io/gorm"
)

// QRCodeRepository is the sole reader/writer of the qr_codes table. Every
// lookup filters by owner and id in one query, so a record owned by someone
// else is indistinguishable from a missing one.
type QRCodeRepository struct {
	db *gorm.DB
}

func NewQRCodeRepository(db *gorm.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

func (r *QRCodeRepository) Create(ctx context.Context, qr *domain.QRCode) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

// GetByUserID returns one page of the owner's codes, newest first, together
// with the owner's total count.
func (r *QRCodeRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.QRCode, int64, error) {
	var codes []domain.QRCode
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.QRCode{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&codes).Error; err != nil {
		return nil, 0, err
	}

	return codes, total, nil
}

func (r *QRCodeRepository) GetByIDAndUserID(ctx context.Context, id, userID int64) (*domain.QRCode, error) {
	var qr domain.QRCode
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&qr)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &qr, nil
}

// DeleteByIDAndUserID hard-deletes the record. Returns gorm.ErrRecordNotFound
// when the owner/id pair matches nothing.
func (r *QRCodeRepository) DeleteByIDAndUserID(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.QRCode{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementDownloadCount applies the increment in a single owner-scoped
// UPDATE so concurrent acknowledgements never lose updates.
func (r *QRCodeRepository) IncrementDownloadCount(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.QRCode{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"download_count": gorm.Expr("download_count + ?", 1),
			"updated_at":     time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
