package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/mamadbah2/bizdash/internal/service/access"
)

const (
	ledgerRange   = "Ledger!A:H"
	ledgerIDRange = "Ledger!A:A"
)

// ExportLedger appends the transactions dated within [start, end] to the
// ledger sheet. Transactions whose id already appears in the sheet are
// skipped, so a rerun after a partial failure does not duplicate rows.
func (s *Service) ExportLedger(ctx context.Context, start, end time.Time) (int, error) {
	if s.ledger == nil {
		return 0, nil
	}

	existing, err := s.ledger.ReadRange(ctx, ledgerIDRange)
	if err != nil {
		return 0, fmt.Errorf("read ledger ids: %w", err)
	}
	exported := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		if len(row) == 0 {
			continue
		}
		exported[fmt.Sprint(row[0])] = struct{}{}
	}

	txs, err := s.data.Transactions.List(ctx, access.BusinessFilter{})
	if err != nil {
		return 0, fmt.Errorf("load transactions: %w", err)
	}

	var rows [][]interface{}
	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		if _, ok := exported[tx.ID]; ok {
			continue
		}
		rows = append(rows, []interface{}{
			tx.ID,
			tx.Date.Format(dateLayout),
			string(tx.Business),
			string(tx.Type),
			tx.Category,
			tx.Description,
			tx.Amount,
			tx.SignedAmount(),
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := s.ledger.WriteRows(ctx, ledgerRange, rows); err != nil {
		return 0, fmt.Errorf("append ledger rows: %w", err)
	}
	return len(rows), nil
}
