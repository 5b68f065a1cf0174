// Package store provides the key-value persistence layer for biodata
// sessions. Backends hold opaque byte values; the Adapter on top maps them to
// typed session state.
package store

import (
	"context"
)

// Well-known keys the persistence adapter reads and writes.
const (
	KeyFormData = "matrimonialFormData"
	KeyTemplate = "selectedTemplate"
	KeySection  = "currentSection"
	KeyPhoto    = "uploadedPhoto"
)

// Store is the backend contract. Get reports a miss with found=false rather
// than an error so callers can distinguish absence from backend failure.
type Store interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
