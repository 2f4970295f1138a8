package qrcode

import "qrgen/internal/domain"

type CustomizationRequest struct {
	Color                string `json:"color"`
	BackgroundColor      string `json:"backgroundColor"`
	Size                 int    `json:"size" validate:"omitempty,gte=100,lte=1000"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
}

type CreateQRCodeRequest struct {
	Title         string                `json:"title" validate:"required,min=1,max=100"`
	Content       string                `json:"content" validate:"required,min=1,max=2000"`
	Type          string                `json:"type" validate:"omitempty,oneof=text url email phone wifi"`
	Customization *CustomizationRequest `json:"customization"`
}

// ListQRCodesResponse matches what the dashboard expects for its pager.
type ListQRCodesResponse struct {
	QRCodes     []domain.QRCode `json:"qrCodes"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}
