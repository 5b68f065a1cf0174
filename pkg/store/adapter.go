package store

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-biodata/pkg/errors"
	"github.com/goliatone/go-biodata/pkg/formdata"
)

// Snapshot is the typed view of persisted session state. Section and
// TemplateID come back raw; callers apply their own defaults for missing or
// unknown values.
type Snapshot struct {
	Record     formdata.Record
	TemplateID string
	Section    string
	Photo      string
}

// Adapter maps session state onto the well-known store keys. Saves are
// per-key: a failing key is logged and skipped so the remaining keys still
// persist, matching best-effort local storage semantics.
type Adapter struct {
	store  Store
	logger *log.Logger
}

// AdapterOption configures the adapter.
type AdapterOption func(*Adapter)

// WithLogger injects the logger used for save and load warnings.
func WithLogger(logger *log.Logger) AdapterOption {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAdapter wraps a backend store. The default logger is silent.
func NewAdapter(backend Store, options ...AdapterOption) *Adapter {
	adapter := &Adapter{
		store:  backend,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(adapter)
		}
	}
	return adapter
}

// Save writes the snapshot. Failures never propagate; each key is written
// independently and logged on error.
func (a *Adapter) Save(ctx context.Context, snap Snapshot) {
	record := snap.Record
	if record == nil {
		record = formdata.Record{}
	}
	if data, err := json.Marshal(record); err != nil {
		a.logger.Warn("serialize form data", "err", errors.Wrap(errors.ErrCodeMalformedData, err, "encode form data"))
	} else if err := a.store.Set(ctx, KeyFormData, data); err != nil {
		a.logger.Warn("persist form data", "err", storageErr(err, KeyFormData))
	}

	if err := a.store.Set(ctx, KeyTemplate, []byte(snap.TemplateID)); err != nil {
		a.logger.Warn("persist template selection", "err", storageErr(err, KeyTemplate))
	}
	if err := a.store.Set(ctx, KeySection, []byte(snap.Section)); err != nil {
		a.logger.Warn("persist current section", "err", storageErr(err, KeySection))
	}

	if snap.Photo == "" {
		if err := a.store.Delete(ctx, KeyPhoto); err != nil {
			a.logger.Warn("remove persisted photo", "err", storageErr(err, KeyPhoto))
		}
		return
	}
	if err := a.store.Set(ctx, KeyPhoto, []byte(snap.Photo)); err != nil {
		a.logger.Warn("persist photo", "err", storageErr(err, KeyPhoto))
	}
}

// Load reads the snapshot back. A malformed form data blob is logged and
// replaced with an empty record in the result; the stored blob is left in
// place untouched. Missing keys yield zero values.
func (a *Adapter) Load(ctx context.Context) Snapshot {
	snap := Snapshot{Record: formdata.Record{}}

	if data, found, err := a.store.Get(ctx, KeyFormData); err != nil {
		a.logger.Warn("read form data", "err", storageErr(err, KeyFormData))
	} else if found {
		var record formdata.Record
		if err := json.Unmarshal(data, &record); err != nil {
			a.logger.Warn("malformed form data, starting fresh", "err", errors.Wrap(errors.ErrCodeMalformedData, err, "decode form data"))
		} else {
			snap.Record = record
		}
	}

	snap.TemplateID = a.loadString(ctx, KeyTemplate)
	snap.Section = a.loadString(ctx, KeySection)
	snap.Photo = a.loadString(ctx, KeyPhoto)
	return snap
}

// Reset removes every persisted key.
func (a *Adapter) Reset(ctx context.Context) {
	for _, key := range []string{KeyFormData, KeyTemplate, KeySection, KeyPhoto} {
		if err := a.store.Delete(ctx, key); err != nil {
			a.logger.Warn("remove persisted key", "key", key, "err", storageErr(err, key))
		}
	}
}

func (a *Adapter) loadString(ctx context.Context, key string) string {
	data, found, err := a.store.Get(ctx, key)
	if err != nil {
		a.logger.Warn("read persisted key", "key", key, "err", storageErr(err, key))
		return ""
	}
	if !found {
		return ""
	}
	return string(data)
}

func storageErr(cause error, key string) error {
	return errors.Wrap(errors.ErrCodeStorageUnavailable, cause, "access key %q", key)
}
