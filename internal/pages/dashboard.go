package pages

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/service/access"
)

// BusinessDashboard is the landing view of one business unit: its
// transactions, its compliance documents, its stored summary and, for the
// weed unit, the strain catalogue.
type BusinessDashboard struct {
	Business     models.Business
	Transactions *TransactionPage
	Compliance   *CompliancePage
	Strains      *StrainPage

	summaries *access.SummaryService
	logger    *zap.Logger
	summary   models.SummaryData
}

func (c *Catalog) Business(business models.Business) *BusinessDashboard {
	d := &BusinessDashboard{
		Business:     business,
		Transactions: c.Transactions(business),
		Compliance:   c.Compliance(business),
		summaries:    c.svc.Summaries,
		logger:       c.logger.Named("business"),
	}
	if business == models.BusinessWeed {
		d.Strains = c.Strains()
	}
	return d
}

// Load fetches every section concurrently and fails if any section fails.
func (d *BusinessDashboard) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return d.Transactions.Load(gctx) })
	g.Go(func() error { return d.Compliance.Load(gctx) })
	if d.Strains != nil {
		g.Go(func() error { return d.Strains.Load(gctx) })
	}
	g.Go(func() error {
		summary, err := d.summaries.Get(gctx, d.Business)
		if err != nil {
			return err
		}
		d.summary = summary
		return nil
	})

	if err := g.Wait(); err != nil {
		d.logger.Error("failed to load business dashboard", zap.String("business", string(d.Business)), zap.Error(err))
		return err
	}
	return nil
}

// Summary returns the stored summary fetched by the last Load.
func (d *BusinessDashboard) Summary() models.SummaryData {
	return d.summary
}
