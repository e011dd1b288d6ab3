package pages

import (
	"testing"
	"time"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/store"
)

func TestComputeCustomerMetrics(t *testing.T) {
	spent := []float64{1250.75, 850.00, 0, 2300.50, 500.20}
	statuses := []models.CustomerStatus{models.CustomerActive, models.CustomerActive, models.CustomerLead, models.CustomerInactive, models.CustomerActive}

	customers := make([]models.Customer, len(spent))
	for i := range spent {
		customers[i] = models.Customer{ID: string(rune('a' + i)), TotalSpent: spent[i], Status: statuses[i]}
	}

	m := ComputeCustomerMetrics(customers)
	if m.Total != 5 || m.Active != 3 || m.Leads != 1 {
		t.Fatalf("counts = %+v", m)
	}
	if got := m.ActiveRate.String(); got != "60" {
		t.Fatalf("activeRate = %s, want 60", got)
	}
	if got := m.TotalRevenue.String(); got != "4901.45" {
		t.Fatalf("totalRevenue = %s, want 4901.45", got)
	}
	if got := m.ActiveRevenue.String(); got != "2600.95" {
		t.Fatalf("activeRevenue = %s, want 2600.95", got)
	}
}

func TestComputeCustomerMetrics_Empty(t *testing.T) {
	m := ComputeCustomerMetrics(nil)
	if !m.ActiveRate.IsZero() || !m.TotalRevenue.IsZero() {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestComputeTransactionMetrics(t *testing.T) {
	m := ComputeTransactionMetrics(store.Seeded().Transactions.All(), 3)

	if got := m.Income.String(); got != "1850" {
		t.Fatalf("income = %s", got)
	}
	if got := m.Expenses.String(); got != "350" {
		t.Fatalf("expenses = %s", got)
	}
	if got := m.Net.String(); got != "1500" {
		t.Fatalf("net = %s", got)
	}
	if len(m.Recent) != 3 || m.Recent[0].ID != "6" || m.Recent[2].ID != "4" {
		t.Fatalf("recent = %+v", m.Recent)
	}
}

func TestComputeComplianceMetrics(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	docs := []models.ComplianceDoc{
		{ID: "soon", Status: models.ComplianceValid, ExpiryDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "late", Status: models.ComplianceValid, ExpiryDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "far", Status: models.ComplianceExpiringSoon, ExpiryDate: time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)},
	}

	m := ComputeComplianceMetrics(docs, now, 30)
	if len(m.Expiring) != 1 || m.Expiring[0].Doc.ID != "soon" || m.Expiring[0].DaysUntilExpiry != 19 {
		t.Fatalf("expiring = %+v", m.Expiring)
	}
	if len(m.Overdue) != 1 || m.Overdue[0].DaysUntilExpiry != -31 {
		t.Fatalf("overdue = %+v", m.Overdue)
	}
	// Stored status is reported as is, even when the date disagrees.
	if m.ByStatus[models.ComplianceValid] != 2 || m.ByStatus[models.ComplianceExpiringSoon] != 1 {
		t.Fatalf("byStatus = %+v", m.ByStatus)
	}
}

func TestComputeEquipmentMetrics(t *testing.T) {
	m := ComputeEquipmentMetrics(store.Seeded().Equipment.All())
	if m.Total != 6 || m.ByStatus[models.EquipmentOperational] != 3 {
		t.Fatalf("metrics = %+v", m)
	}
	if m.NeedsAttention != 2 {
		t.Fatalf("needsAttention = %d, want 2", m.NeedsAttention)
	}
	if got := m.OperationalRate.String(); got != "50" {
		t.Fatalf("operationalRate = %s", got)
	}
}

func TestComputeTaskMetrics(t *testing.T) {
	now := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)
	m := ComputeTaskMetrics(store.Seeded().Tasks.All(), now)

	if m.Overdue != 1 {
		t.Fatalf("overdue = %d, want 1", m.Overdue)
	}
	if m.HighPriority != 2 {
		t.Fatalf("high priority open = %d, want 2", m.HighPriority)
	}
	if got := m.DoneRate.String(); got != "20" {
		t.Fatalf("doneRate = %s", got)
	}
}

func TestComputeCalendarMetrics(t *testing.T) {
	now := time.Date(2025, 7, 3, 10, 0, 0, 0, time.UTC)
	m := ComputeCalendarMetrics(store.Seeded().Events.All(), now, 5)

	if len(m.Upcoming) != 2 || m.Upcoming[0].ID != "3" || m.Upcoming[1].ID != "4" {
		t.Fatalf("upcoming = %+v", m.Upcoming)
	}
	if got := m.MarketCosts.String(); got != "105" {
		t.Fatalf("marketCosts = %s", got)
	}
	if got := m.Expenditures.String(); got != "350" {
		t.Fatalf("expenditures = %s", got)
	}
}

func TestComputeStrainAndSupplierMetrics(t *testing.T) {
	st := store.Seeded()

	sm := ComputeStrainMetrics(st.Strains.All())
	if sm.ActiveStrains != 3 || sm.AverageTHC.String() != "22.33" {
		t.Fatalf("strain metrics = %+v", sm)
	}

	pm := ComputeSupplierMetrics(st.Suppliers.All())
	if pm.AverageRating.String() != "4" || pm.TopRated != 1 {
		t.Fatalf("supplier metrics = %+v", pm)
	}
}
