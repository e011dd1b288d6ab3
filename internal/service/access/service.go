// Package access is the asynchronous façade through which every read and
// write of the in-memory store goes. Each call waits on the configured
// Delayer before touching the store.
package access

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/latency"
	"github.com/mamadbah2/bizdash/internal/store"
)

// ErrNotFound is returned by Update when no record has the requested id.
// Delete never returns it.
var ErrNotFound = errors.New("record not found")

// IDGenerator produces identifiers for newly created records.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator issues prefix-1, prefix-2, ... and never repeats within
// the generator's lifetime.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

func (g *SequenceGenerator) NewID() string {
	n := g.next.Add(1)
	if g.Prefix == "" {
		return strconv.FormatUint(n, 10)
	}
	return g.Prefix + "-" + strconv.FormatUint(n, 10)
}

// Option customises a Service.
type Option func(*deps)

// WithDelayer replaces the default latency profile.
func WithDelayer(d latency.Delayer) Option {
	return func(o *deps) { o.delayer = d }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *deps) { o.ids = g }
}

// WithClock replaces time.Now for defaulted timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *deps) { o.now = now }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *zap.Logger) Option {
	return func(o *deps) { o.logger = logger }
}

type deps struct {
	delayer latency.Delayer
	ids     IDGenerator
	now     func() time.Time
	logger  *zap.Logger
}

// Service groups the per-entity access services. It is the only component
// holding mutation rights over the store.
type Service struct {
	Transactions *TransactionService
	Strains      *StrainService
	Customers    *CustomerService
	Suppliers    *SupplierService
	Equipment    *EquipmentService
	Compliance   *ComplianceService
	Tasks        *TaskService
	Events       *EventService
	Summaries    *SummaryService
}

// NewService wires the access layer over st.
func NewService(st *store.Store, opts ...Option) *Service {
	d := &deps{
		delayer: latency.Default(),
		ids:     UUIDGenerator{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}

	return &Service{
		Transactions: &TransactionService{crud: newCrud("transactions", st.Transactions, d)},
		Strains:      &StrainService{crud: newCrud("strains", st.Strains, d)},
		Customers:    &CustomerService{crud: newCrud("customers", st.Customers, d)},
		Suppliers:    &SupplierService{crud: newCrud("suppliers", st.Suppliers, d)},
		Equipment:    &EquipmentService{crud: newCrud("equipment", st.Equipment, d)},
		Compliance:   &ComplianceService{crud: newCrud("compliance", st.Compliance, d)},
		Tasks:        &TaskService{crud: newCrud("tasks", st.Tasks, d)},
		Events:       &EventService{crud: newCrud("events", st.Events, d)},
		Summaries:    &SummaryService{store: st, deps: d},
	}
}

// crud implements the uniform list/create/update/delete contract for one kind.
type crud[T models.Entity] struct {
	kind string
	coll *store.Collection[T]
	*deps
}

func newCrud[T models.Entity](kind string, coll *store.Collection[T], d *deps) crud[T] {
	return crud[T]{kind: kind, coll: coll, deps: d}
}

func (c crud[T]) op(verb string) latency.Op {
	return latency.Op(c.kind + "." + verb)
}

func (c crud[T]) list(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := c.delayer.Wait(ctx, c.op("list")); err != nil {
		return nil, err
	}
	return c.coll.Filter(keep), nil
}

func (c crud[T]) create(ctx context.Context, build func(id string, now time.Time) T) (T, error) {
	if err := c.delayer.Wait(ctx, c.op("create")); err != nil {
		var zero T
		return zero, err
	}

	record := build(c.ids.NewID(), c.now())
	c.coll.Append(record)

	c.logger.Debug("record created", zap.String("kind", c.kind), zap.String("id", record.Identity()))
	return record, nil
}

func (c crud[T]) update(ctx context.Context, id string, apply func(*T)) (T, error) {
	var zero T
	if err := c.delayer.Wait(ctx, c.op("update")); err != nil {
		return zero, err
	}

	updated, ok := c.coll.Update(id, apply)
	if !ok {
		c.logger.Warn("update of unknown record", zap.String("kind", c.kind), zap.String("id", id))
		return zero, fmt.Errorf("update %s %q: %w", c.kind, id, ErrNotFound)
	}

	c.logger.Debug("record updated", zap.String("kind", c.kind), zap.String("id", id))
	return updated, nil
}

func (c crud[T]) delete(ctx context.Context, id string) error {
	if err := c.delayer.Wait(ctx, c.op("delete")); err != nil {
		return err
	}

	if c.coll.Remove(id) {
		c.logger.Debug("record deleted", zap.String("kind", c.kind), zap.String("id", id))
	}
	return nil
}
