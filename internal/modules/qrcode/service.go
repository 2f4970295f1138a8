package qrcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"qrgen/internal/domain"
	"qrgen/internal/encoder"
	"qrgen/internal/pkg/validator"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Service owns the QR code lifecycle: validation, ownership scoping and the
// one-time encode at creation. Collaborators come in through the constructor.
type Service struct {
	codes QRCodeRepositoryInterface
	enc   Encoder
}

func NewService(codes QRCodeRepositoryInterface, enc Encoder) *Service {
	return &Service{codes: codes, enc: enc}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateQRCodeRequest) (*domain.QRCode, error) {
	req.Title = strings.TrimSpace(req.Title)

	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	qrType := domain.QRType(req.Type)
	if req.Type == "" {
		qrType = domain.TypeText
	}

	custom := resolveCustomization(req.Customization)

	data, err := s.enc.Encode(req.Content, encoder.Options{
		ForegroundColor:      custom.Color,
		BackgroundColor:      custom.BackgroundColor,
		Size:                 custom.Size,
		ErrorCorrectionLevel: custom.ErrorCorrectionLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	now := time.Now()
	qr := &domain.QRCode{
		Title:         req.Title,
		Content:       req.Content,
		Type:          qrType,
		Customization: custom,
		QRCodeData:    data,
		UserID:        userID,
		DownloadCount: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.codes.Create(ctx, qr); err != nil {
		return nil, err
	}
	return qr, nil
}

// List returns one page of the caller's codes, newest first. Out-of-range
// pages come back empty rather than erroring. Non-positive page/pageSize are
// clamped to 1 and the default.
func (s *Service) List(ctx context.Context, userID int64, page, pageSize int) (*ListQRCodesResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize
	codes, total, err := s.codes.GetByUserID(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []domain.QRCode{}
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &ListQRCodesResponse{
		QRCodes:     codes,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id int64) (*domain.QRCode, error) {
	qr, err := s.codes.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return qr, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	err := s.codes.DeleteByIDAndUserID(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// RecordDownload acknowledges a client-side download. The store applies the
// increment atomically; the payload itself is not re-rendered.
func (s *Service) RecordDownload(ctx context.Context, userID, id int64) error {
	err := s.codes.IncrementDownloadCount(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func resolveCustomization(req *CustomizationRequest) domain.Customization {
	custom := domain.Customization{
		Color:                "#000000",
		BackgroundColor:      "#ffffff",
		Size:                 200,
		ErrorCorrectionLevel: domain.ECLevelMedium,
	}
	if req == nil {
		return custom
	}

	if req.Color != "" {
		custom.Color = req.Color
	}
	if req.BackgroundColor != "" {
		custom.BackgroundColor = req.BackgroundColor
	}
	if req.Size != 0 {
		custom.Size = req.Size
	}
	if req.ErrorCorrectionLevel != "" {
		custom.ErrorCorrectionLevel = domain.ErrorCorrectionLevel(req.ErrorCorrectionLevel)
	}
	return custom
}
