package session

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-biodata/pkg/errors"
)

// MaxPhotoBytes caps uploaded photos at 5MB.
const MaxPhotoBytes = 5 * 1024 * 1024

// ValidatePhoto rejects non-image MIME types and oversized payloads. It runs
// before any session state changes so a rejected upload leaves the current
// photo untouched.
func ValidatePhoto(mimeType string, size int64) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return errors.New(errors.ErrCodeInvalidImageType, "expected an image, got %q", mimeType)
	}
	if size > MaxPhotoBytes {
		return errors.New(errors.ErrCodeImageTooLarge, "photo is %d bytes, limit is %d", size, MaxPhotoBytes)
	}
	return nil
}

// EncodePhoto packs image bytes into a data URL, the portable representation
// stored and fed to renderers.
func EncodePhoto(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DetectImageType sniffs the MIME type from the payload's leading bytes.
func DetectImageType(data []byte) string {
	return http.DetectContentType(data)
}
