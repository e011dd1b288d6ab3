package store

import (
	"sync"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

// Store owns one collection per entity kind plus the per-unit summary table.
// It lives for the whole process; there is no reset.
type Store struct {
	Transactions *Collection[models.Transaction]
	Strains      *Collection[models.Strain]
	Customers    *Collection[models.Customer]
	Suppliers    *Collection[models.Supplier]
	Equipment    *Collection[models.EquipmentItem]
	Compliance   *Collection[models.ComplianceDoc]
	Tasks        *Collection[models.Task]
	Events       *Collection[models.CalendarEvent]

	summaryMu sync.RWMutex
	summaries map[models.Business]models.SummaryData
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Transactions: NewCollection[models.Transaction](),
		Strains:      NewCollection[models.Strain](),
		Customers:    NewCollection[models.Customer](),
		Suppliers:    NewCollection[models.Supplier](),
		Equipment:    NewCollection[models.EquipmentItem](),
		Compliance:   NewCollection[models.ComplianceDoc](),
		Tasks:        NewCollection[models.Task](),
		Events:       NewCollection[models.CalendarEvent](),
		summaries:    make(map[models.Business]models.SummaryData),
	}
}

// Summary returns the stored summary of business.
func (s *Store) Summary(business models.Business) (models.SummaryData, bool) {
	s.summaryMu.RLock()
	defer s.summaryMu.RUnlock()
	data, ok := s.summaries[business]
	return data, ok
}

// Summaries returns the stored summaries in business display order.
func (s *Store) Summaries() []models.SummaryData {
	s.summaryMu.RLock()
	defer s.summaryMu.RUnlock()

	out := make([]models.SummaryData, 0, len(s.summaries))
	for _, b := range models.Businesses {
		if data, ok := s.summaries[b]; ok {
			out = append(out, data)
		}
	}
	return out
}

// SetSummary replaces the stored summary of data.Business.
func (s *Store) SetSummary(data models.SummaryData) {
	s.summaryMu.Lock()
	defer s.summaryMu.Unlock()
	s.summaries[data.Business] = data
}
