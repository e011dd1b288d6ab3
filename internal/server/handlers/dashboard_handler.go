package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/forms"
	"github.com/mamadbah2/bizdash/internal/notify"
	"github.com/mamadbah2/bizdash/internal/pages"
	"github.com/mamadbah2/bizdash/internal/service/access"
	"github.com/mamadbah2/bizdash/internal/service/reporting"
)

// SnapshotReader returns stored weekly snapshots of a business unit.
type SnapshotReader interface {
	ListSummarySnapshots(ctx context.Context, business models.Business, limit int64) ([]models.SummarySnapshot, error)
}

// DashboardHandler renders the dashboard pages as JSON. Every request works
// on a fresh page; the outcomes it emits are returned with the response and
// forwarded to the base notifier.
type DashboardHandler struct {
	svc      *access.Service
	reports  *reporting.Service
	history  SnapshotReader
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// Option customises a DashboardHandler.
type Option func(*DashboardHandler)

// WithHistory enables GET /summaries/:business/history.
func WithHistory(r SnapshotReader) Option { return func(h *DashboardHandler) { h.history = r } }

func WithClock(now func() time.Time) Option { return func(h *DashboardHandler) { h.now = now } }

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc *access.Service, reports *reporting.Service, logger *zap.Logger, opts ...Option) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &DashboardHandler{
		svc:      svc,
		reports:  reports,
		notifier: notify.NewLogNotifier(logger.Named("notify")),
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts every dashboard route on api.
func (h *DashboardHandler) Register(api *gin.RouterGroup) {
	registerResource(api, h, transactionsResource)
	registerResource(api, h, strainsResource)
	registerResource(api, h, customersResource)
	registerResource(api, h, suppliersResource)
	registerResource(api, h, equipmentResource)
	registerResource(api, h, complianceResource)
	registerResource(api, h, tasksResource)
	registerResource(api, h, calendarResource)

	api.GET("/summaries", h.ListSummaries)
	api.GET("/summaries/:business", h.GetSummary)
	api.GET("/summaries/:business/history", h.SummaryHistory)
	api.GET("/businesses", h.ListBusinesses)
	api.GET("/businesses/:business", h.BusinessDashboard)
	api.GET("/reports", h.Reports)
}

// outcomeRecorder keeps the outcomes of one request.
type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []notify.Outcome
	next     notify.Notifier
}

func (r *outcomeRecorder) Notify(o notify.Outcome) {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, o)
	r.mu.Unlock()
	r.next.Notify(o)
}

func (r *outcomeRecorder) list() []notify.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Outcome{}, r.outcomes...)
}

func (h *DashboardHandler) catalog() (*pages.Catalog, *outcomeRecorder) {
	rec := &outcomeRecorder{next: h.notifier}
	return pages.NewCatalog(h.svc, rec, h.logger.Named("pages")), rec
}

type errorResponse struct {
	Error         string            `json:"error"`
	Fields        map[string]string `json:"fields,omitempty"`
	Notifications []notify.Outcome  `json:"notifications,omitempty"`
}

// writeError maps domain errors to HTTP statuses. Unexpected errors get the
// same generic message the failure notification carries.
func (h *DashboardHandler) writeError(c *gin.Context, err error, outcomes []notify.Outcome) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields, Notifications: outcomes})
	case errors.Is(err, access.ErrNotFound), errors.Is(err, pages.ErrUnknownItem):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found", Notifications: outcomes})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Something went wrong", Notifications: outcomes})
	}
}

// businessParam reads a business unit from the path or query. An empty value
// is accepted only when optional is set.
func (h *DashboardHandler) businessParam(c *gin.Context, value string, optional bool) (models.Business, bool) {
	b := models.Business(value)
	if (b == "" && optional) || b.IsValid() {
		return b, true
	}
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:  "validation failed",
		Fields: map[string]string{"business": "Business must be honey, weed, fish or mushrooms."},
	})
	return "", false
}
