package domain

import "time"

type QRType string

const (
	TypeText  QRType = "text"
	TypeURL   QRType = "url"
	TypeEmail QRType = "email"
	TypePhone QRType = "phone"
	TypeWifi  QRType = "wifi"
)

type ErrorCorrectionLevel string

const (
	ECLevelLow      ErrorCorrectionLevel = "L"
	ECLevelMedium   ErrorCorrectionLevel = "M"
	ECLevelQuartile ErrorCorrectionLevel = "Q"
	ECLevelHigh     ErrorCorrectionLevel = "H"
)

// Customization holds the rendering options a QR code was generated with.
// Stored flattened into the qr_codes table, serialized nested in API responses.
type Customization struct {
	Color                string               `json:"color" gorm:"column:color"`
	BackgroundColor      string               `json:"backgroundColor" gorm:"column:background_color"`
	Size                 int                  `json:"size" gorm:"column:size"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel" gorm:"column:error_correction_level"`
}

// QRCode is one generated code owned by a single user. QRCodeData is the
// PNG payload rendered once at creation and never regenerated; UserID is
// set from the authenticated caller and never changes.
type QRCode struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	Type          QRType        `json:"type"`
	Customization Customization `json:"customization" gorm:"embedded"`
	QRCodeData    string        `json:"qrCodeData"`
	UserID        int64         `json:"userId" gorm:"index"`
	DownloadCount int64         `json:"downloadCount"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (QRCode) TableName() string { return "qr_codes" }
