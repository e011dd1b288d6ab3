// Package pages drives the list views of the dashboard: fetching, dialog
// state, mutation dispatch with notifications, and refetch after every
// successful mutation.
package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/forms"
	"github.com/mamadbah2/bizdash/internal/notify"
)

// ListState is the state of a page's list machine.
type ListState string

const (
	StateIdle    ListState = "idle"
	StateLoading ListState = "loading"
	StateLoaded  ListState = "loaded"
	StateErrored ListState = "errored"
)

// DialogMode is the state of a page's dialog machine.
type DialogMode string

const (
	DialogClosed DialogMode = "closed"
	DialogAdd    DialogMode = "add"
	DialogEdit   DialogMode = "edit"
)

var (
	// ErrDialogClosed is returned by Submit when no dialog is open.
	ErrDialogClosed = errors.New("no dialog is open")
	// ErrUnknownItem is returned by OpenEdit for an id absent from the list.
	ErrUnknownItem = errors.New("item is not in the current list")
)

// Source connects a page to the access layer.
type Source[T models.Entity, F any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, form F) error
	Update func(ctx context.Context, id string, form F) error
	Delete func(ctx context.Context, id string) error
}

// Dialog describes the open dialog, if any.
type Dialog struct {
	Mode      DialogMode `json:"mode"`
	EditingID string     `json:"editingId,omitempty"`
}

// View is a snapshot of a page for rendering.
type View[T models.Entity] struct {
	State  ListState `json:"state"`
	Items  []T       `json:"items"`
	Dialog Dialog    `json:"dialog"`
	Error  string    `json:"error,omitempty"`
}

// Page owns one list view. The list and dialog machines are independent:
// reloading never closes a dialog and an open dialog never blocks a reload.
type Page[T models.Entity, F any] struct {
	label    string
	src      Source[T, F]
	notifier notify.Notifier
	logger   *zap.Logger

	mu     sync.Mutex
	state  ListState
	items  []T
	err    error
	dialog Dialog
}

// New builds a page for records named label ("Transaction", "Strain", ...).
func New[T models.Entity, F any](label string, src Source[T, F], notifier notify.Notifier, logger *zap.Logger) *Page[T, F] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	return &Page[T, F]{
		label:    label,
		src:      src,
		notifier: notifier,
		logger:   logger,
		state:    StateIdle,
		dialog:   Dialog{Mode: DialogClosed},
	}
}

// Load fetches the list. On failure the page falls back to an empty list
// and emits a failure notification.
func (p *Page[T, F]) Load(ctx context.Context) error {
	p.mu.Lock()
	p.state = StateLoading
	p.mu.Unlock()

	items, err := p.src.List(ctx)

	p.mu.Lock()
	if err != nil {
		p.state = StateErrored
		p.items = nil
		p.err = err
	} else {
		p.state = StateLoaded
		p.items = items
		p.err = nil
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Error("failed to load list", zap.String("page", p.label), zap.Error(err))
		p.notifier.Notify(notify.Failure("Failed to load data"))
		return fmt.Errorf("load %s list: %w", strings.ToLower(p.label), err)
	}
	return nil
}

// OpenAdd opens the dialog in add mode.
func (p *Page[T, F]) OpenAdd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog = Dialog{Mode: DialogAdd}
}

// OpenEdit opens the dialog in edit mode for an item of the current list.
func (p *Page[T, F]) OpenEdit(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range p.items {
		if item.Identity() == id {
			p.dialog = Dialog{Mode: DialogEdit, EditingID: id}
			return nil
		}
	}
	return fmt.Errorf("edit %s %q: %w", strings.ToLower(p.label), id, ErrUnknownItem)
}

// Close closes the dialog without submitting.
func (p *Page[T, F]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog = Dialog{Mode: DialogClosed}
}

// Submit validates form and dispatches it according to the open dialog.
// A validation failure is returned as *forms.ValidationError, leaves the
// dialog open and emits no notification. Every dispatched mutation emits
// exactly one notification; success closes the dialog and reloads the list.
func (p *Page[T, F]) Submit(ctx context.Context, form F) error {
	p.mu.Lock()
	dialog := p.dialog
	p.mu.Unlock()

	if dialog.Mode == DialogClosed {
		return ErrDialogClosed
	}
	if err := forms.Validate(form); err != nil {
		return err
	}

	var (
		err  error
		verb string
	)
	switch dialog.Mode {
	case DialogAdd:
		verb = "add"
		err = p.src.Create(ctx, form)
	case DialogEdit:
		verb = "update"
		err = p.src.Update(ctx, dialog.EditingID, form)
	}

	if err != nil {
		p.logger.Error("mutation failed", zap.String("page", p.label), zap.String("verb", verb), zap.Error(err))
		p.notifier.Notify(notify.Failure(fmt.Sprintf("Failed to %s %s", verb, strings.ToLower(p.label))))
		return err
	}

	p.notifier.Notify(notify.Success(fmt.Sprintf("%s %s successfully", p.label, pastTense(verb))))
	p.Close()
	return p.reload(ctx)
}

// Delete removes the item with id and reloads the list on success.
func (p *Page[T, F]) Delete(ctx context.Context, id string) error {
	if err := p.src.Delete(ctx, id); err != nil {
		p.logger.Error("delete failed", zap.String("page", p.label), zap.String("id", id), zap.Error(err))
		p.notifier.Notify(notify.Failure(fmt.Sprintf("Failed to delete %s", strings.ToLower(p.label))))
		return err
	}

	p.notifier.Notify(notify.Success(fmt.Sprintf("%s deleted successfully", p.label)))
	return p.reload(ctx)
}

// reload refetches after a mutation. Its failure is reported by Load itself
// and does not turn the already-notified mutation into an error.
func (p *Page[T, F]) reload(ctx context.Context) error {
	if err := p.Load(ctx); err != nil {
		p.logger.Debug("refetch after mutation failed", zap.String("page", p.label), zap.Error(err))
	}
	return nil
}

func (p *Page[T, F]) State() ListState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Page[T, F]) Dialog() Dialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialog
}

// Items returns the most recently loaded list.
func (p *Page[T, F]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// View snapshots the page. Items is never nil so empty lists render as [].
func (p *Page[T, F]) View() View[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := View[T]{
		State:  p.state,
		Items:  append(make([]T, 0, len(p.items)), p.items...),
		Dialog: p.dialog,
	}
	if p.err != nil {
		v.Error = p.err.Error()
	}
	return v
}

func pastTense(verb string) string {
	switch verb {
	case "add":
		return "added"
	case "update":
		return "updated"
	}
	return verb
}
