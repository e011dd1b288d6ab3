package access

import (
	"context"
	"fmt"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/store"
)

// SummaryService exposes the stored per-unit summary table read-only.
type SummaryService struct {
	store *store.Store
	*deps
}

func (s *SummaryService) List(ctx context.Context) ([]models.SummaryData, error) {
	if err := s.delayer.Wait(ctx, "summaries.list"); err != nil {
		return nil, err
	}
	return s.store.Summaries(), nil
}

func (s *SummaryService) Get(ctx context.Context, business models.Business) (models.SummaryData, error) {
	if err := s.delayer.Wait(ctx, "summaries.list"); err != nil {
		return models.SummaryData{}, err
	}
	data, ok := s.store.Summary(business)
	if !ok {
		return models.SummaryData{}, fmt.Errorf("summary %q: %w", business, ErrNotFound)
	}
	return data, nil
}
