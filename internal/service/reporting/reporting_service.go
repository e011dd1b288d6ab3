package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/service/access"
)

const dateLayout = "2006-01-02"

// SnapshotWriter persists weekly summary snapshots.
type SnapshotWriter interface {
	SaveSummarySnapshot(ctx context.Context, snapshot models.SummarySnapshot) error
}

// Ledger is the spreadsheet the transaction ledger is exported to.
type Ledger interface {
	WriteRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
	ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error)
}

// DigestSender delivers the weekly digest text.
type DigestSender interface {
	SendDigest(ctx context.Context, body string) error
}

// Service aggregates the access layer into per-unit reports.
type Service struct {
	data      *access.Service
	snapshots SnapshotWriter
	ledger    Ledger
	sender    DigestSender
	logger    *zap.Logger
	now       func() time.Time
}

// Option customises a Service.
type Option func(*Service)

func WithSnapshots(w SnapshotWriter) Option { return func(s *Service) { s.snapshots = w } }

func WithLedger(l Ledger) Option { return func(s *Service) { s.ledger = l } }

func WithSender(d DigestSender) Option { return func(s *Service) { s.sender = d } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// NewService wires a new reporting service instance. Every sink is optional.
func NewService(data *access.Service, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{data: data, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BusinessReport places the maintained summary of a unit next to the one
// derived from its transactions. The two are never reconciled.
type BusinessReport struct {
	Info    models.BusinessInfo `json:"info"`
	Stored  models.SummaryData  `json:"stored"`
	Derived models.SummaryData  `json:"derived"`
	// ProfitDrift is stored profit minus derived profit.
	ProfitDrift float64 `json:"profitDrift"`
}

// BusinessSummary derives sales, expenses and profit of one unit from the
// transactions dated within [start, end].
func (s *Service) BusinessSummary(ctx context.Context, business models.Business, start, end time.Time) (models.SummaryData, error) {
	txs, err := s.data.Transactions.List(ctx, access.BusinessFilter{Business: business})
	if err != nil {
		return models.SummaryData{}, fmt.Errorf("load %s transactions: %w", business, err)
	}
	return derive(business, txs, start, end), nil
}

// Dashboard reports every unit for the period [start, end], in display order.
func (s *Service) Dashboard(ctx context.Context, start, end time.Time) ([]BusinessReport, error) {
	var (
		txs    []models.Transaction
		stored []models.SummaryData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.data.Transactions.List(gctx, access.BusinessFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		stored, err = s.data.Summaries.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	byBusiness := make(map[models.Business]models.SummaryData, len(stored))
	for _, summary := range stored {
		byBusiness[summary.Business] = summary
	}

	reports := make([]BusinessReport, 0, len(models.Businesses))
	for _, b := range models.Businesses {
		var unit []models.Transaction
		for _, tx := range txs {
			if tx.Business == b {
				unit = append(unit, tx)
			}
		}

		st := byBusiness[b]
		derived := derive(b, unit, start, end)
		derived.InventoryStatus = st.InventoryStatus
		derived.InventoryValue = st.InventoryValue

		drift := decimal.NewFromFloat(st.Profit).Sub(decimal.NewFromFloat(derived.Profit))
		reports = append(reports, BusinessReport{
			Info:        b.Info(),
			Stored:      st,
			Derived:     derived,
			ProfitDrift: drift.InexactFloat64(),
		})
	}
	return reports, nil
}

func derive(business models.Business, txs []models.Transaction, start, end time.Time) models.SummaryData {
	sales, expenses := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Type == models.TransactionExpense {
			expenses = expenses.Add(amount)
		} else {
			sales = sales.Add(amount)
		}
	}
	return models.SummaryData{
		Business:      business,
		TotalSales:    sales.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
		Profit:        sales.Sub(expenses).InexactFloat64(),
	}
}

// WeeklyPeriod returns the seven days ending at now.
func WeeklyPeriod(now time.Time) (start, end time.Time) {
	return now.AddDate(0, 0, -7), now
}

// RunWeekly produces the weekly digest and pushes it through every
// configured sink. A failing sink is logged and skipped; the remaining sinks
// still run and the failures are returned together.
func (s *Service) RunWeekly(ctx context.Context) (string, error) {
	now := s.now()
	start, end := WeeklyPeriod(now)

	reports, err := s.Dashboard(ctx, start, end)
	if err != nil {
		return "", err
	}
	digest, err := s.WeeklyDigest(ctx, now, reports)
	if err != nil {
		return "", err
	}

	var errs []error
	if s.snapshots != nil {
		for _, r := range reports {
			snapshot := models.SummarySnapshot{
				Business:   r.Info.Business,
				PeriodFrom: start,
				PeriodTo:   end,
				Stored:     r.Stored,
				Derived:    r.Derived,
				CreatedAt:  now,
			}
			if err := s.snapshots.SaveSummarySnapshot(ctx, snapshot); err != nil {
				s.logger.Error("failed to save summary snapshot", zap.String("business", string(r.Info.Business)), zap.Error(err))
				errs = append(errs, err)
			}
		}
	}

	if s.ledger != nil {
		if n, err := s.ExportLedger(ctx, start, end); err != nil {
			s.logger.Error("failed to export ledger", zap.Error(err))
			errs = append(errs, err)
		} else {
			s.logger.Info("ledger exported", zap.Int("rows", n))
		}
	}

	if s.sender != nil {
		if err := s.sender.SendDigest(ctx, digest); err != nil {
			s.logger.Error("failed to send weekly digest", zap.Error(err))
			errs = append(errs, err)
		}
	}

	return digest, errors.Join(errs...)
}
