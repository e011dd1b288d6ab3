package pages

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// percent returns part/total as a percentage rounded to two places; zero
// when total is zero.
func percent(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
}

// CustomerMetrics are the summary cards of the customers view. Revenue is
// read from the stored TotalSpent of each customer, not from transactions.
type CustomerMetrics struct {
	Total         int             `json:"total"`
	Active        int             `json:"active"`
	Leads         int             `json:"leads"`
	ActiveRate    decimal.Decimal `json:"activeRate"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	ActiveRevenue decimal.Decimal `json:"activeRevenue"`
}

func ComputeCustomerMetrics(customers []models.Customer) CustomerMetrics {
	m := CustomerMetrics{Total: len(customers), TotalRevenue: decimal.Zero, ActiveRevenue: decimal.Zero}
	for _, c := range customers {
		spent := decimal.NewFromFloat(c.TotalSpent)
		m.TotalRevenue = m.TotalRevenue.Add(spent)
		switch c.Status {
		case models.CustomerActive:
			m.Active++
			m.ActiveRevenue = m.ActiveRevenue.Add(spent)
		case models.CustomerLead:
			m.Leads++
		}
	}
	m.ActiveRate = percent(m.Active, m.Total)
	return m
}

type TransactionMetrics struct {
	Count    int                  `json:"count"`
	Income   decimal.Decimal      `json:"income"`
	Expenses decimal.Decimal      `json:"expenses"`
	Net      decimal.Decimal      `json:"net"`
	Recent   []models.Transaction `json:"recent"`
}

// ComputeTransactionMetrics totals income and expenses and keeps the recent
// most recent transactions by date.
func ComputeTransactionMetrics(txs []models.Transaction, recent int) TransactionMetrics {
	m := TransactionMetrics{Count: len(txs), Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Type == models.TransactionExpense {
			m.Expenses = m.Expenses.Add(amount)
		} else {
			m.Income = m.Income.Add(amount)
		}
	}
	m.Net = m.Income.Sub(m.Expenses)
	m.Recent = RecentTransactions(txs, recent)
	return m
}

// RecentTransactions returns up to n transactions, newest first.
func RecentTransactions(txs []models.Transaction, n int) []models.Transaction {
	sorted := append([]models.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DocExpiry pairs a document with its days until expiry.
type DocExpiry struct {
	Doc             models.ComplianceDoc `json:"doc"`
	DaysUntilExpiry int                  `json:"daysUntilExpiry"`
}

type ComplianceMetrics struct {
	ByStatus map[models.ComplianceStatus]int `json:"byStatus"`
	Expiring []DocExpiry                     `json:"expiring"`
	Overdue  []DocExpiry                     `json:"overdue"`
}

// ComputeComplianceMetrics buckets documents by their stored status and,
// independently, by expiry date: Expiring holds documents expiring within
// window days, Overdue those whose expiry date has passed whatever their
// stored status says.
func ComputeComplianceMetrics(docs []models.ComplianceDoc, now time.Time, window int) ComplianceMetrics {
	m := ComplianceMetrics{ByStatus: make(map[models.ComplianceStatus]int), Expiring: []DocExpiry{}, Overdue: []DocExpiry{}}
	for _, d := range docs {
		m.ByStatus[d.Status]++
		days := d.DaysUntilExpiry(now)
		entry := DocExpiry{Doc: d, DaysUntilExpiry: days}
		switch {
		case days < 0:
			m.Overdue = append(m.Overdue, entry)
		case days <= window:
			m.Expiring = append(m.Expiring, entry)
		}
	}
	sort.SliceStable(m.Expiring, func(i, j int) bool { return m.Expiring[i].DaysUntilExpiry < m.Expiring[j].DaysUntilExpiry })
	return m
}

type EquipmentMetrics struct {
	Total           int                            `json:"total"`
	ByStatus        map[models.EquipmentStatus]int `json:"byStatus"`
	OperationalRate decimal.Decimal                `json:"operationalRate"`
	NeedsAttention  int                            `json:"needsAttention"`
}

func ComputeEquipmentMetrics(items []models.EquipmentItem) EquipmentMetrics {
	m := EquipmentMetrics{Total: len(items), ByStatus: make(map[models.EquipmentStatus]int)}
	for _, s := range models.EquipmentStatuses {
		m.ByStatus[s] = 0
	}
	for _, item := range items {
		m.ByStatus[item.Status]++
	}
	m.NeedsAttention = m.ByStatus[models.EquipmentMaintenance] + m.ByStatus[models.EquipmentRequiresRepair]
	m.OperationalRate = percent(m.ByStatus[models.EquipmentOperational], m.Total)
	return m
}

type TaskMetrics struct {
	Total        int                       `json:"total"`
	ByStatus     map[models.TaskStatus]int `json:"byStatus"`
	Overdue      int                       `json:"overdue"`
	HighPriority int                       `json:"highPriorityOpen"`
	DoneRate     decimal.Decimal           `json:"doneRate"`
}

func ComputeTaskMetrics(tasks []models.Task, now time.Time) TaskMetrics {
	m := TaskMetrics{Total: len(tasks), ByStatus: make(map[models.TaskStatus]int)}
	for _, s := range models.TaskStatuses {
		m.ByStatus[s] = 0
	}
	for _, t := range tasks {
		m.ByStatus[t.Status]++
		if t.Overdue(now) {
			m.Overdue++
		}
		if t.Priority == models.PriorityHigh && t.Status != models.TaskDone {
			m.HighPriority++
		}
	}
	m.DoneRate = percent(m.ByStatus[models.TaskDone], m.Total)
	return m
}

type CalendarMetrics struct {
	Total        int                    `json:"total"`
	Upcoming     []models.CalendarEvent `json:"upcoming"`
	MarketCosts  decimal.Decimal        `json:"marketCosts"`
	Expenditures decimal.Decimal        `json:"expenditures"`
}

// ComputeCalendarMetrics lists up to limit events from the start of today
// onwards, earliest first, and totals market and expenditure costs.
func ComputeCalendarMetrics(events []models.CalendarEvent, now time.Time, limit int) CalendarMetrics {
	m := CalendarMetrics{Total: len(events), Upcoming: []models.CalendarEvent{}, MarketCosts: decimal.Zero, Expenditures: decimal.Zero}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, e := range events {
		if !e.Date.Before(today) {
			m.Upcoming = append(m.Upcoming, e)
		}
		if e.Cost == nil {
			continue
		}
		cost := decimal.NewFromFloat(*e.Cost)
		switch e.Type {
		case models.EventMarket:
			m.MarketCosts = m.MarketCosts.Add(cost)
		case models.EventExpenditure:
			m.Expenditures = m.Expenditures.Add(cost)
		}
	}

	sort.SliceStable(m.Upcoming, func(i, j int) bool { return m.Upcoming[i].Date.Before(m.Upcoming[j].Date) })
	if limit >= 0 && len(m.Upcoming) > limit {
		m.Upcoming = m.Upcoming[:limit]
	}
	return m
}

type StrainMetrics struct {
	ActiveStrains int             `json:"activeStrains"`
	AverageTHC    decimal.Decimal `json:"averageThc"`
	ByType        map[string]int  `json:"byType"`
}

// ComputeStrainMetrics averages THC over the strains that record it.
func ComputeStrainMetrics(strains []models.Strain) StrainMetrics {
	m := StrainMetrics{ActiveStrains: len(strains), AverageTHC: decimal.Zero, ByType: make(map[string]int)}
	sum := decimal.Zero
	n := 0
	for _, s := range strains {
		m.ByType[string(s.Type)]++
		if s.THCPercentage != nil {
			sum = sum.Add(decimal.NewFromFloat(*s.THCPercentage))
			n++
		}
	}
	if n > 0 {
		m.AverageTHC = sum.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	return m
}

type SupplierMetrics struct {
	Total         int             `json:"total"`
	AverageRating decimal.Decimal `json:"averageRating"`
	TopRated      int             `json:"topRated"`
}

func ComputeSupplierMetrics(suppliers []models.Supplier) SupplierMetrics {
	m := SupplierMetrics{Total: len(suppliers), AverageRating: decimal.Zero}
	if len(suppliers) == 0 {
		return m
	}
	var sum int64
	for _, s := range suppliers {
		sum += int64(s.Rating)
		if s.Rating == 5 {
			m.TopRated++
		}
	}
	m.AverageRating = decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(suppliers)))).Round(2)
	return m
}
