package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/forms"
	"github.com/mamadbah2/bizdash/internal/notify"
	"github.com/mamadbah2/bizdash/internal/pages"
)

const (
	recentTransactions = 5
	upcomingEvents     = 5
	expiryWindowDays   = 30
)

// resource binds one entity page to its routes.
type resource[T models.Entity, F any] struct {
	path string
	// scoped resources accept ?business= to narrow the list.
	scoped  bool
	page    func(cat *pages.Catalog, business models.Business) *pages.Page[T, F]
	metrics func(items []T, now time.Time) any
}

type pageResponse[T models.Entity] struct {
	pages.View[T]
	Metrics       any              `json:"metrics"`
	Notifications []notify.Outcome `json:"notifications"`
}

var transactionsResource = resource[models.Transaction, forms.TransactionForm]{
	path:   "transactions",
	scoped: true,
	page:   func(cat *pages.Catalog, b models.Business) *pages.TransactionPage { return cat.Transactions(b) },
	metrics: func(items []models.Transaction, _ time.Time) any {
		return pages.ComputeTransactionMetrics(items, recentTransactions)
	},
}

var strainsResource = resource[models.Strain, forms.StrainForm]{
	path:    "strains",
	page:    func(cat *pages.Catalog, _ models.Business) *pages.StrainPage { return cat.Strains() },
	metrics: func(items []models.Strain, _ time.Time) any { return pages.ComputeStrainMetrics(items) },
}

var customersResource = resource[models.Customer, forms.CustomerForm]{
	path:    "customers",
	page:    func(cat *pages.Catalog, _ models.Business) *pages.CustomerPage { return cat.Customers() },
	metrics: func(items []models.Customer, _ time.Time) any { return pages.ComputeCustomerMetrics(items) },
}

var suppliersResource = resource[models.Supplier, forms.SupplierForm]{
	path:    "suppliers",
	page:    func(cat *pages.Catalog, _ models.Business) *pages.SupplierPage { return cat.Suppliers() },
	metrics: func(items []models.Supplier, _ time.Time) any { return pages.ComputeSupplierMetrics(items) },
}

var equipmentResource = resource[models.EquipmentItem, forms.EquipmentForm]{
	path:    "equipment",
	page:    func(cat *pages.Catalog, _ models.Business) *pages.EquipmentPage { return cat.Equipment() },
	metrics: func(items []models.EquipmentItem, _ time.Time) any { return pages.ComputeEquipmentMetrics(items) },
}

var complianceResource = resource[models.ComplianceDoc, forms.ComplianceForm]{
	path:   "compliance",
	scoped: true,
	page:   func(cat *pages.Catalog, b models.Business) *pages.CompliancePage { return cat.Compliance(b) },
	metrics: func(items []models.ComplianceDoc, now time.Time) any {
		return pages.ComputeComplianceMetrics(items, now, expiryWindowDays)
	},
}

var tasksResource = resource[models.Task, forms.TaskForm]{
	path:    "tasks",
	page:    func(cat *pages.Catalog, _ models.Business) *pages.TaskPage { return cat.Tasks() },
	metrics: func(items []models.Task, now time.Time) any { return pages.ComputeTaskMetrics(items, now) },
}

var calendarResource = resource[models.CalendarEvent, forms.EventForm]{
	path: "events",
	page: func(cat *pages.Catalog, _ models.Business) *pages.CalendarPage { return cat.Calendar() },
	metrics: func(items []models.CalendarEvent, now time.Time) any {
		return pages.ComputeCalendarMetrics(items, now, upcomingEvents)
	},
}

func registerResource[T models.Entity, F any](api *gin.RouterGroup, h *DashboardHandler, r resource[T, F]) {
	api.GET("/"+r.path, listHandler(h, r))
	api.POST("/"+r.path, createHandler(h, r))
	api.PUT("/"+r.path+"/:id", updateHandler(h, r))
	api.DELETE("/"+r.path+"/:id", deleteHandler(h, r))
}

func render[T models.Entity, F any](h *DashboardHandler, r resource[T, F], page *pages.Page[T, F], rec *outcomeRecorder) pageResponse[T] {
	view := page.View()
	return pageResponse[T]{
		View:          view,
		Metrics:       r.metrics(view.Items, h.now()),
		Notifications: rec.list(),
	}
}

// open builds the page for the request, honouring ?business= on scoped resources.
func open[T models.Entity, F any](c *gin.Context, h *DashboardHandler, r resource[T, F]) (*pages.Page[T, F], *outcomeRecorder, bool) {
	var business models.Business
	if r.scoped {
		b, ok := h.businessParam(c, c.Query("business"), true)
		if !ok {
			return nil, nil, false
		}
		business = b
	}
	cat, rec := h.catalog()
	return r.page(cat, business), rec, true
}

func listHandler[T models.Entity, F any](h *DashboardHandler, r resource[T, F]) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, rec, ok := open(c, h, r)
		if !ok {
			return
		}
		if err := page.Load(c.Request.Context()); err != nil {
			h.writeError(c, err, rec.list())
			return
		}
		c.JSON(http.StatusOK, render(h, r, page, rec))
	}
}

func createHandler[T models.Entity, F any](h *DashboardHandler, r resource[T, F]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form F
		if err := c.ShouldBind(&form); err != nil {
			h.logger.Debug("invalid form payload", zap.String("resource", r.path), zap.Error(err))
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		page, rec, ok := open(c, h, r)
		if !ok {
			return
		}
		page.OpenAdd()
		if err := page.Submit(c.Request.Context(), form); err != nil {
			h.writeError(c, err, rec.list())
			return
		}
		c.JSON(http.StatusCreated, render(h, r, page, rec))
	}
}

func updateHandler[T models.Entity, F any](h *DashboardHandler, r resource[T, F]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form F
		if err := c.ShouldBind(&form); err != nil {
			h.logger.Debug("invalid form payload", zap.String("resource", r.path), zap.Error(err))
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		page, rec, ok := open(c, h, r)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		if err := page.Load(ctx); err != nil {
			h.writeError(c, err, rec.list())
			return
		}
		if err := page.OpenEdit(c.Param("id")); err != nil {
			h.writeError(c, err, rec.list())
			return
		}
		if err := page.Submit(ctx, form); err != nil {
			h.writeError(c, err, rec.list())
			return
		}
		c.JSON(http.StatusOK, render(h, r, page, rec))
	}
}

func deleteHandler[T models.Entity, F any](h *DashboardHandler, r resource[T, F]) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, rec, ok := open(c, h, r)
		if !ok {
			return
		}
		if err := page.Delete(c.Request.Context(), c.Param("id")); err != nil {
			h.writeError(c, err, rec.list())
			return
		}
		c.JSON(http.StatusOK, render(h, r, page, rec))
	}
}
