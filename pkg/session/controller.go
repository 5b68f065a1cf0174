// Package session owns the live state of a biodata builder session: the form
// record, the template selection, the photo, and the current screen. The
// Controller mediates every mutation, schedules debounced persistence, and
// serves previews through the renderer registry.
package session

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-biodata/pkg/catalog"
	"github.com/goliatone/go-biodata/pkg/document"
	"github.com/goliatone/go-biodata/pkg/errors"
	"github.com/goliatone/go-biodata/pkg/formdata"
	"github.com/goliatone/go-biodata/pkg/progress"
	"github.com/goliatone/go-biodata/pkg/render"
	"github.com/goliatone/go-biodata/pkg/store"
	"github.com/goliatone/go-biodata/pkg/themes"
)

// DefaultSaveDelay is the trailing debounce applied to high-frequency
// mutations before they hit the store.
const DefaultSaveDelay = 1000 * time.Millisecond

// State is a point-in-time copy of the session.
type State struct {
	Section    Section
	Record     formdata.Record
	Photo      string
	TemplateID string
}

// HasPhoto reports whether a photo is attached.
func (s State) HasPhoto() bool { return s.Photo != "" }

// HasTemplate reports whether a template selection is set. Controller-managed
// sessions always carry at least the catalog default.
func (s State) HasTemplate() bool { return s.TemplateID != "" }

// Events holds optional observer callbacks. Callbacks run on the mutating
// goroutine after the controller lock is released; they must not block.
type Events struct {
	OnProgress       func(progress.Report)
	OnSectionChange  func(Section)
	OnTemplateChange func(templateID string)
	OnPhotoChange    func(hasPhoto bool)
	OnSave           func()
}

// Option configures the controller.
type Option func(*Controller)

// WithLogger injects the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCatalog overrides the embedded verse and template catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Controller) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

// WithRegistry overrides the renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(c *Controller) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithSaveDelay overrides the debounce applied before persisting.
func WithSaveDelay(delay time.Duration) Option {
	return func(c *Controller) {
		if delay > 0 {
			c.saveDelay = delay
		}
	}
}

// WithEvents registers observer callbacks.
func WithEvents(events Events) Option {
	return func(c *Controller) {
		c.events = events
	}
}

// WithNotifier injects the user-facing notification sink.
func WithNotifier(notifier Notifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithClock overrides the time source used for age derivation.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// Controller is the session coordinator. All methods are safe for concurrent
// use.
type Controller struct {
	mu    sync.Mutex
	state State

	adapter   *store.Adapter
	catalog   *catalog.Catalog
	themes    *themes.Provider
	registry  *render.Registry
	logger    *log.Logger
	events    Events
	notifier  Notifier
	saveDelay time.Duration
	clock     func() time.Time

	saveTimer *time.Timer
	photoGen  uint64
	closed    bool
}

// New constructs a controller on top of a persistence adapter.
func New(adapter *store.Adapter, options ...Option) (*Controller, error) {
	if adapter == nil {
		return nil, errors.New(errors.ErrCodeInternal, "persistence adapter is required")
	}

	c := &Controller{
		state: State{
			Section: SectionWelcome,
			Record:  formdata.Record{},
		},
		adapter:   adapter,
		catalog:   catalog.Default(),
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
		notifier:  NopNotifier{},
		saveDelay: DefaultSaveDelay,
		clock:     time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	c.state.TemplateID = c.catalog.DefaultTemplate().ID

	provider, err := themes.NewProvider(c.catalog)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build theme provider")
	}
	c.themes = provider

	if c.registry == nil {
		c.registry = render.NewRegistry()
	}

	return c, nil
}

// Restore loads persisted state. Unknown sections fall back to the welcome
// screen, missing or unknown template ids to the catalog default; a malformed
// record is replaced with an empty one by the adapter.
func (c *Controller) Restore(ctx context.Context) {
	snap := c.adapter.Load(ctx)

	templateID := snap.TemplateID
	if templateID == "" {
		templateID = c.catalog.DefaultTemplate().ID
	} else if _, ok := c.catalog.TemplateByID(templateID); !ok {
		c.logger.Warn("unknown persisted template, using default", "template", templateID)
		templateID = c.catalog.DefaultTemplate().ID
	}

	c.mu.Lock()
	c.state = State{
		Section:    ParseSection(snap.Section),
		Record:     snap.Record,
		Photo:      snap.Photo,
		TemplateID: templateID,
	}
	report := c.progressLocked()
	c.mu.Unlock()

	c.emitProgress(report)
}

// ApplyFields rebuilds the record from a full field snapshot and schedules a
// debounced save.
func (c *Controller) ApplyFields(fields []formdata.Field) {
	record := formdata.Collect(fields, c.clock())

	c.mu.Lock()
	c.state.Record = record
	report := c.progressLocked()
	c.scheduleSaveLocked()
	c.mu.Unlock()

	c.emitProgress(report)
}

// SelectTemplate picks a template by id and persists immediately.
func (c *Controller) SelectTemplate(ctx context.Context, templateID string) error {
	if _, ok := c.catalog.TemplateByID(templateID); !ok {
		return errors.New(errors.ErrCodeMissingCatalogReference, "unknown template %q", templateID)
	}

	c.mu.Lock()
	c.state.TemplateID = templateID
	report := c.progressLocked()
	c.mu.Unlock()

	c.SaveNow(ctx)
	if c.events.OnTemplateChange != nil {
		c.events.OnTemplateChange(templateID)
	}
	c.notifier.Notify(NotifySuccess, "Template selected")
	c.emitProgress(report)
	return nil
}

// SwitchSection moves the flow to another screen. Navigation persists
// immediately so a restart resumes on the same screen.
func (c *Controller) SwitchSection(ctx context.Context, section Section) error {
	if !section.Valid() {
		return errors.New(errors.ErrCodeInternal, "unknown section %q", section)
	}

	c.mu.Lock()
	c.state.Section = section
	c.mu.Unlock()

	c.SaveNow(ctx)
	if c.events.OnSectionChange != nil {
		c.events.OnSectionChange(section)
	}
	return nil
}

// AttachPhoto validates and stores an in-memory image, persisting
// immediately. Validation failures leave the current photo untouched.
func (c *Controller) AttachPhoto(ctx context.Context, mimeType string, data []byte) error {
	if err := ValidatePhoto(mimeType, int64(len(data))); err != nil {
		return err
	}
	encoded := EncodePhoto(mimeType, data)

	c.mu.Lock()
	c.photoGen++
	c.state.Photo = encoded
	report := c.progressLocked()
	c.mu.Unlock()

	c.SaveNow(ctx)
	if c.events.OnPhotoChange != nil {
		c.events.OnPhotoChange(true)
	}
	c.notifier.Notify(NotifySuccess, "Photo added")
	c.emitProgress(report)
	return nil
}

// AttachPhotoFile validates the file up front, then reads it on a background
// goroutine. A newer attach or a removal supersedes the in-flight read: its
// result is dropped.
func (c *Controller) AttachPhotoFile(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeImageDecodeFailure, err, "inspect photo file")
	}
	if info.Size() > MaxPhotoBytes {
		return errors.New(errors.ErrCodeImageTooLarge, "photo is %d bytes, limit is %d", info.Size(), MaxPhotoBytes)
	}

	c.mu.Lock()
	c.photoGen++
	generation := c.photoGen
	c.mu.Unlock()

	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			c.logger.Warn("read photo file", "path", path, "err", err)
			c.notifier.Notify(NotifyError, "Could not read the photo file")
			return
		}
		mimeType := DetectImageType(data)
		if err := ValidatePhoto(mimeType, int64(len(data))); err != nil {
			c.logger.Warn("photo rejected", "path", path, "err", err)
			c.notifier.Notify(NotifyError, errors.UserMessage(err))
			return
		}
		encoded := EncodePhoto(mimeType, data)

		c.mu.Lock()
		if c.photoGen != generation {
			c.mu.Unlock()
			return
		}
		c.state.Photo = encoded
		report := c.progressLocked()
		c.mu.Unlock()

		c.SaveNow(ctx)
		if c.events.OnPhotoChange != nil {
			c.events.OnPhotoChange(true)
		}
		c.notifier.Notify(NotifySuccess, "Photo added")
		c.emitProgress(report)
	}()
	return nil
}

// RemovePhoto clears the photo and persists immediately. It also supersedes
// any in-flight file read.
func (c *Controller) RemovePhoto(ctx context.Context) {
	c.mu.Lock()
	c.photoGen++
	c.state.Photo = ""
	report := c.progressLocked()
	c.mu.Unlock()

	c.SaveNow(ctx)
	if c.events.OnPhotoChange != nil {
		c.events.OnPhotoChange(false)
	}
	c.notifier.Notify(NotifyInfo, "Photo removed")
	c.emitProgress(report)
}

// SaveNow flushes the current state to the store, cancelling any pending
// debounced save.
func (c *Controller) SaveNow(ctx context.Context) {
	c.mu.Lock()
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.adapter.Save(ctx, snap)
	if c.events.OnSave != nil {
		c.events.OnSave()
	}
}

// Reset discards all session state and removes the persisted keys.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
	c.photoGen++
	c.state = State{
		Section:    SectionWelcome,
		Record:     formdata.Record{},
		TemplateID: c.catalog.DefaultTemplate().ID,
	}
	report := c.progressLocked()
	c.mu.Unlock()

	c.adapter.Reset(ctx)
	c.emitProgress(report)
}

// Close flushes pending changes. The controller must not be used afterwards.
func (c *Controller) Close(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.SaveNow(ctx)
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.Record = c.state.Record.Clone()
	return state
}

// Progress reports the current completion estimate.
func (c *Controller) Progress() progress.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progressLocked()
}

// Preview composes the document from current state and renders it with the
// named renderer. The template selection resolves through the catalog, so an
// empty or stale selection still renders with the default template.
func (c *Controller) Preview(ctx context.Context, rendererName string) ([]byte, string, error) {
	renderer, err := c.registry.Get(rendererName)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "resolve renderer")
	}

	c.mu.Lock()
	record := c.state.Record.Clone()
	templateID := c.state.TemplateID
	photo := c.state.Photo
	c.mu.Unlock()

	tpl := c.catalog.ResolveTemplate(templateID)
	doc := document.Compose(record, tpl, c.catalog.VerseForTemplate(tpl), photo)

	out, err := renderer.Render(ctx, doc, render.RenderOptions{
		Theme: c.themes.Config(tpl.ID),
	})
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "render preview")
	}
	return out, renderer.ContentType(), nil
}

func (c *Controller) progressLocked() progress.Report {
	return progress.Estimate(c.state.Record, c.state.HasPhoto(), c.state.HasTemplate())
}

func (c *Controller) snapshotLocked() store.Snapshot {
	return store.Snapshot{
		Record:     c.state.Record.Clone(),
		TemplateID: c.state.TemplateID,
		Section:    string(c.state.Section),
		Photo:      c.state.Photo,
	}
}

// scheduleSaveLocked arms (or re-arms) the trailing debounce timer. The
// caller holds the lock.
func (c *Controller) scheduleSaveLocked() {
	if c.closed {
		return
	}
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveTimer = time.AfterFunc(c.saveDelay, func() {
		c.SaveNow(context.Background())
	})
}

func (c *Controller) emitProgress(report progress.Report) {
	if c.events.OnProgress != nil {
		c.events.OnProgress(report)
	}
}
