package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-biodata/pkg/errors"
	"github.com/goliatone/go-biodata/pkg/formdata"
)

func TestAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(NewMemoryStore())

	snap := Snapshot{
		Record: formdata.Record{
			"fullName": "Amina",
			"age":      26,
			"hobbies":  []string{"reading", "calligraphy"},
		},
		TemplateID: "royal",
		Section:    "form",
		Photo:      "data:image/png;base64,AAAA",
	}
	adapter.Save(ctx, snap)

	loaded := adapter.Load(ctx)
	if diff := cmp.Diff(snap, loaded); diff != "" {
		t.Fatalf("snapshot mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestAdapterLoadDefaultsWhenEmpty(t *testing.T) {
	adapter := NewAdapter(NewMemoryStore())

	snap := adapter.Load(context.Background())
	if snap.Record == nil || len(snap.Record) != 0 {
		t.Fatalf("expected empty record, got %#v", snap.Record)
	}
	if snap.TemplateID != "" || snap.Section != "" || snap.Photo != "" {
		t.Fatalf("expected zero values, got %+v", snap)
	}
}

func TestAdapterLeavesMalformedBlobInPlace(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStore()
	if err := backend.Set(ctx, KeyFormData, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	adapter := NewAdapter(backend)
	snap := adapter.Load(ctx)
	if len(snap.Record) != 0 {
		t.Fatalf("expected empty record for malformed blob, got %#v", snap.Record)
	}

	// The malformed blob stays in the backend untouched.
	data, found, err := backend.Get(ctx, KeyFormData)
	if err != nil || !found {
		t.Fatalf("blob missing: found=%v err=%v", found, err)
	}
	if string(data) != "{not json" {
		t.Fatalf("blob altered: %q", data)
	}
}

func TestAdapterSaveRemovesPhotoWhenEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStore()
	adapter := NewAdapter(backend)

	adapter.Save(ctx, Snapshot{Photo: "data:image/png;base64,AAAA"})
	if _, found, _ := backend.Get(ctx, KeyPhoto); !found {
		t.Fatalf("photo not persisted")
	}

	adapter.Save(ctx, Snapshot{})
	if _, found, _ := backend.Get(ctx, KeyPhoto); found {
		t.Fatalf("photo key should be removed when snapshot has no photo")
	}
}

type failingStore struct {
	*MemoryStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key string, data []byte) error {
	if key == s.failKey {
		return fmt.Errorf("disk full")
	}
	return s.MemoryStore.Set(ctx, key, data)
}

func TestAdapterSaveIsolatesKeyFailures(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{MemoryStore: NewMemoryStore(), failKey: KeyFormData}
	adapter := NewAdapter(backend)

	adapter.Save(ctx, Snapshot{
		Record:     formdata.Record{"fullName": "Amina"},
		TemplateID: "royal",
		Section:    "form",
	})

	// The failing key must not block the others.
	if data, _, _ := backend.Get(ctx, KeyTemplate); string(data) != "royal" {
		t.Fatalf("template not persisted after form data failure")
	}
	if data, _, _ := backend.Get(ctx, KeySection); string(data) != "form" {
		t.Fatalf("section not persisted after form data failure")
	}
}

func TestAdapterLogsTaxonomyCodes(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{})

	backend := &failingStore{MemoryStore: NewMemoryStore(), failKey: KeyFormData}
	adapter := NewAdapter(backend, WithLogger(logger))
	adapter.Save(ctx, Snapshot{Record: formdata.Record{"fullName": "Amina"}})
	if !strings.Contains(buf.String(), string(errors.ErrCodeStorageUnavailable)) {
		t.Fatalf("backend failure not tagged %s:\n%s", errors.ErrCodeStorageUnavailable, buf.String())
	}

	buf.Reset()
	seeded := NewMemoryStore()
	if err := seeded.Set(ctx, KeyFormData, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	NewAdapter(seeded, WithLogger(logger)).Load(ctx)
	if !strings.Contains(buf.String(), string(errors.ErrCodeMalformedData)) {
		t.Fatalf("parse failure not tagged %s:\n%s", errors.ErrCodeMalformedData, buf.String())
	}
}

func TestAdapterReset(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStore()
	adapter := NewAdapter(backend)

	adapter.Save(ctx, Snapshot{
		Record:     formdata.Record{"fullName": "Amina"},
		TemplateID: "royal",
		Section:    "form",
		Photo:      "data:image/png;base64,AAAA",
	})
	adapter.Reset(ctx)

	for _, key := range []string{KeyFormData, KeyTemplate, KeySection, KeyPhoto} {
		if _, found, _ := backend.Get(ctx, key); found {
			t.Fatalf("key %q survived reset", key)
		}
	}
}
