package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/service/access"
)

// ExpiryWindowDays is how far ahead the digest looks for expiring documents.
const ExpiryWindowDays = 30

// WeeklyDigest formats the weekly text digest from already computed
// reports, adding expiring compliance documents and open tasks.
func (s *Service) WeeklyDigest(ctx context.Context, now time.Time, reports []BusinessReport) (string, error) {
	docs, err := s.data.Compliance.List(ctx, access.BusinessFilter{})
	if err != nil {
		return "", fmt.Errorf("load compliance documents: %w", err)
	}
	tasks, err := s.data.Tasks.List(ctx)
	if err != nil {
		return "", fmt.Errorf("load tasks: %w", err)
	}

	start, end := WeeklyPeriod(now)
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly digest (%s - %s)\n", start.Format(dateLayout), end.Format(dateLayout))

	for _, r := range reports {
		fmt.Fprintf(&b, "\n%s: sales %.2f, expenses %.2f, profit %.2f", r.Info.Name, r.Derived.TotalSales, r.Derived.TotalExpenses, r.Derived.Profit)
		if r.Stored.InventoryStatus != "" {
			fmt.Fprintf(&b, " | inventory %s", r.Stored.InventoryStatus)
		}
	}

	type expiring struct {
		doc  models.ComplianceDoc
		days int
	}
	var soon []expiring
	for _, d := range docs {
		if days := d.DaysUntilExpiry(now); days <= ExpiryWindowDays {
			soon = append(soon, expiring{doc: d, days: days})
		}
	}
	sort.SliceStable(soon, func(i, j int) bool { return soon[i].days < soon[j].days })

	fmt.Fprintf(&b, "\n\nCompliance (next %d days): ", ExpiryWindowDays)
	if len(soon) == 0 {
		b.WriteString("nothing expiring.")
	}
	for _, e := range soon {
		if e.days < 0 {
			fmt.Fprintf(&b, "\n- %s (%s) expired %d days ago", e.doc.Title, e.doc.Business.Info().Name, -e.days)
			continue
		}
		fmt.Fprintf(&b, "\n- %s (%s) expires in %d days", e.doc.Title, e.doc.Business.Info().Name, e.days)
	}

	var open []models.Task
	overdue := 0
	for _, t := range tasks {
		if t.Status == models.TaskDone {
			continue
		}
		open = append(open, t)
		if t.Overdue(now) {
			overdue++
		}
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].DueDate.Before(open[j].DueDate) })

	fmt.Fprintf(&b, "\n\nOpen tasks: %d (%d overdue)", len(open), overdue)
	for _, t := range open {
		fmt.Fprintf(&b, "\n- %s [%s, %s] due %s", t.Title, t.Status, t.Priority, t.DueDate.Format(dateLayout))
		if t.Overdue(now) {
			b.WriteString(" OVERDUE")
		}
	}

	return b.String(), nil
}
