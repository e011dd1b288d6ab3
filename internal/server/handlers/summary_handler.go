package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/service/reporting"
)

const dateLayout = "2006-01-02"

type summaryView struct {
	Info    models.BusinessInfo `json:"info"`
	Summary models.SummaryData  `json:"summary"`
}

// ListSummaries returns the stored summary of every unit.
func (h *DashboardHandler) ListSummaries(c *gin.Context) {
	summaries, err := h.svc.Summaries.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, nil)
		return
	}

	out := make([]summaryView, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryView{Info: s.Business.Info(), Summary: s})
	}
	c.JSON(http.StatusOK, gin.H{"summaries": out})
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	business, ok := h.businessParam(c, c.Param("business"), false)
	if !ok {
		return
	}
	summary, err := h.svc.Summaries.Get(c.Request.Context(), business)
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, summaryView{Info: business.Info(), Summary: summary})
}

// SummaryHistory lists stored weekly snapshots, newest first.
func (h *DashboardHandler) SummaryHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "snapshot history is not configured"})
		return
	}
	business, ok := h.businessParam(c, c.Param("business"), false)
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: map[string]string{"limit": "Limit must be a positive integer."}})
		return
	}

	snapshots, err := h.history.ListSummarySnapshots(c.Request.Context(), business, limit)
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": business.Info(), "snapshots": snapshots})
}

func (h *DashboardHandler) ListBusinesses(c *gin.Context) {
	infos := make([]models.BusinessInfo, 0, len(models.Businesses))
	for _, b := range models.Businesses {
		infos = append(infos, b.Info())
	}
	c.JSON(http.StatusOK, gin.H{"businesses": infos})
}

type businessResponse struct {
	Info         models.BusinessInfo                `json:"info"`
	Summary      models.SummaryData                 `json:"summary"`
	Transactions pageResponse[models.Transaction]   `json:"transactions"`
	Compliance   pageResponse[models.ComplianceDoc] `json:"compliance"`
	Strains      *pageResponse[models.Strain]       `json:"strains,omitempty"`
}

// BusinessDashboard renders the landing page of one unit.
func (h *DashboardHandler) BusinessDashboard(c *gin.Context) {
	business, ok := h.businessParam(c, c.Param("business"), false)
	if !ok {
		return
	}

	cat, rec := h.catalog()
	dash := cat.Business(business)
	if err := dash.Load(c.Request.Context()); err != nil {
		h.writeError(c, err, rec.list())
		return
	}

	resp := businessResponse{
		Info:         business.Info(),
		Summary:      dash.Summary(),
		Transactions: render(h, transactionsResource, dash.Transactions, rec),
		Compliance:   render(h, complianceResource, dash.Compliance, rec),
	}
	if dash.Strains != nil {
		strains := render(h, strainsResource, dash.Strains, rec)
		resp.Strains = &strains
	}
	c.JSON(http.StatusOK, resp)
}

// Reports compares stored and derived summaries over ?from=&to= (dates,
// inclusive), defaulting to the last seven days.
func (h *DashboardHandler) Reports(c *gin.Context) {
	start, end := reporting.WeeklyPeriod(h.now())

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: map[string]string{"from": "Use the YYYY-MM-DD format."}})
			return
		}
		start = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: map[string]string{"to": "Use the YYYY-MM-DD format."}})
			return
		}
		end = t.Add(24*time.Hour - time.Nanosecond)
	}

	reports, err := h.reports.Dashboard(c.Request.Context(), start, end)
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from":    start.Format(dateLayout),
		"to":      end.Format(dateLayout),
		"reports": reports,
	})
}

