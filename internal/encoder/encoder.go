package encoder

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	qrc "github.com/skip2/go-qrcode"

	"qrgen/internal/domain"
)

// Options mirrors the customization a caller picked for one code.
type Options struct {
	ForegroundColor      string
	BackgroundColor      string
	Size                 int
	ErrorCorrectionLevel domain.ErrorCorrectionLevel
}

// PNGEncoder renders QR codes as base64 PNG data URLs. Encoding is pure:
// the same content and options always produce the same payload.
type PNGEncoder struct{}

func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{}
}

func (e *PNGEncoder) Encode(content string, opts Options) (string, error) {
	fg, err := parseHexColor(opts.ForegroundColor)
	if err != nil {
		return "", fmt.Errorf("foreground color: %w", err)
	}
	bg, err := parseHexColor(opts.BackgroundColor)
	if err != nil {
		return "", fmt.Errorf("background color: %w", err)
	}

	q, err := qrc.New(content, recoveryLevel(opts.ErrorCorrectionLevel))
	if err != nil {
		return "", err
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg

	png, err := q.PNG(opts.Size)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func recoveryLevel(level domain.ErrorCorrectionLevel) qrc.RecoveryLevel {
	switch level {
	case domain.ECLevelLow:
		return qrc.Low
	case domain.ECLevelQuartile:
		return qrc.High
	case domain.ECLevelHigh:
		return qrc.Highest
	default:
		return qrc.Medium
	}
}

// parseHexColor accepts #RGB and #RRGGBB.
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
