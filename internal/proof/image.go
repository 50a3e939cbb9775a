// Package proof validates the screenshots and QR codes players attach to wallet
// requests and match results. Images travel inline as base64 data URLs.
package proof

import (
	"encoding/base64"
	"fmt"
	"strings"

	"arena-wallet/internal/model"

	"github.com/gabriel-vasile/mimetype"
)

type Image struct {
	ContentType string
	Size        int
}

// Limit is a size cap together with the message shown when it is exceeded.
type Limit struct {
	MaxBytes int
	Message  string
}

// Decode parses a data URL, checks the payload really is an image and that it
// fits under the limit.
func Decode(dataURL string, limit Limit) (Image, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return Image{}, model.Reject(model.ErrInvalidImage, "Upload a valid image")
	}

	// base64 grows data by 4/3; reject oversized payloads before decoding them
	if base64.StdEncoding.DecodedLen(len(payload)) > limit.MaxBytes+2 {
		return Image{}, model.Reject(model.ErrImageTooLarge, limit.Message)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, model.Reject(fmt.Errorf("%w: %v", model.ErrInvalidImage, err), "Upload a valid image")
	}
	if len(raw) > limit.MaxBytes {
		return Image{}, model.Reject(model.ErrImageTooLarge, limit.Message)
	}

	mt := mimetype.Detect(raw)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Image{}, model.Reject(model.ErrInvalidImage, "Upload a valid image")
	}

	return Image{ContentType: mt.String(), Size: len(raw)}, nil
}
