package qrcode

import (
	"context"

	"qrgen/internal/domain"
	"qrgen/internal/encoder"
)

type QRCodeRepositoryInterface interface {
	Create(ctx context.Context, qr *domain.QRCode) error
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.QRCode, int64, error)
	GetByIDAndUserID(ctx context.Context, id, userID int64) (*domain.QRCode, error)
	DeleteByIDAndUserID(ctx context.Context, id, userID int64) error
	IncrementDownloadCount(ctx context.Context, id, userID int64) error
}

type Encoder interface {
	Encode(content string, opts encoder.Options) (string, error)
}
