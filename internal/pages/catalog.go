package pages

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/forms"
	"github.com/mamadbah2/bizdash/internal/notify"
	"github.com/mamadbah2/bizdash/internal/service/access"
)

type (
	TransactionPage = Page[models.Transaction, forms.TransactionForm]
	StrainPage      = Page[models.Strain, forms.StrainForm]
	CustomerPage    = Page[models.Customer, forms.CustomerForm]
	SupplierPage    = Page[models.Supplier, forms.SupplierForm]
	EquipmentPage   = Page[models.EquipmentItem, forms.EquipmentForm]
	CompliancePage  = Page[models.ComplianceDoc, forms.ComplianceForm]
	TaskPage        = Page[models.Task, forms.TaskForm]
	CalendarPage    = Page[models.CalendarEvent, forms.EventForm]
)

// Catalog builds pages bound to one access service.
type Catalog struct {
	svc      *access.Service
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewCatalog(svc *access.Service, notifier notify.Notifier, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{svc: svc, notifier: notifier, logger: logger}
}

// Transactions builds the transaction list of one business unit. New
// transactions are attributed to that unit; an empty business lists all
// units and rejects additions.
func (c *Catalog) Transactions(business models.Business) *TransactionPage {
	svc := c.svc.Transactions
	return New("Transaction", Source[models.Transaction, forms.TransactionForm]{
		List: func(ctx context.Context) ([]models.Transaction, error) {
			return svc.List(ctx, access.BusinessFilter{Business: business})
		},
		Create: func(ctx context.Context, f forms.TransactionForm) error {
			if !business.IsValid() {
				return &forms.ValidationError{Fields: map[string]string{"business": "Business must be honey, weed, fish or mushrooms."}}
			}
			_, err := svc.Create(ctx, f.ToInput(business))
			return err
		},
		Update: func(ctx context.Context, id string, f forms.TransactionForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("transactions"))
}

func (c *Catalog) Strains() *StrainPage {
	svc := c.svc.Strains
	return New("Strain", Source[models.Strain, forms.StrainForm]{
		List: svc.List,
		Create: func(ctx context.Context, f forms.StrainForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.StrainForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("strains"))
}

func (c *Catalog) Customers() *CustomerPage {
	svc := c.svc.Customers
	return New("Customer", Source[models.Customer, forms.CustomerForm]{
		List: svc.List,
		Create: func(ctx context.Context, f forms.CustomerForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.CustomerForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("customers"))
}

func (c *Catalog) Suppliers() *SupplierPage {
	svc := c.svc.Suppliers
	return New("Supplier", Source[models.Supplier, forms.SupplierForm]{
		List: svc.List,
		Create: func(ctx context.Context, f forms.SupplierForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.SupplierForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("suppliers"))
}

func (c *Catalog) Equipment() *EquipmentPage {
	svc := c.svc.Equipment
	return New("Equipment", Source[models.EquipmentItem, forms.EquipmentForm]{
		List: svc.List,
		Create: func(ctx context.Context, f forms.EquipmentForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.EquipmentForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("equipment"))
}

// Compliance builds the document list, optionally narrowed to one unit.
func (c *Catalog) Compliance(business models.Business) *CompliancePage {
	svc := c.svc.Compliance
	return New("Document", Source[models.ComplianceDoc, forms.ComplianceForm]{
		List: func(ctx context.Context) ([]models.ComplianceDoc, error) {
			return svc.List(ctx, access.BusinessFilter{Business: business})
		},
		Create: func(ctx context.Context, f forms.ComplianceForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.ComplianceForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("compliance"))
}

func (c *Catalog) Tasks() *TaskPage {
	svc := c.svc.Tasks
	return New("Task", Source[models.Task, forms.TaskForm]{
		List: svc.List,
		Create: func(ctx context.Context, f forms.TaskForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.TaskForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("tasks"))
}

func (c *Catalog) Calendar() *CalendarPage {
	svc := c.svc.Events
	return New("Event", Source[models.CalendarEvent, forms.EventForm]{
		List: svc.List,
		Create: func(ctx context.Context, f forms.EventForm) error {
			_, err := svc.Create(ctx, f.ToInput())
			return err
		},
		Update: func(ctx context.Context, id string, f forms.EventForm) error {
			_, err := svc.Update(ctx, id, f.ToPatch())
			return err
		},
		Delete: svc.Delete,
	}, c.notifier, c.logger.Named("calendar"))
}
