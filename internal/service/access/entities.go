package access

import (
	"context"
	"time"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

// BusinessFilter narrows a listing to one business unit. The zero value
// matches every record.
type BusinessFilter struct {
	Business models.Business
}

func (f BusinessFilter) matches(b models.Business) bool {
	return f.Business == "" || f.Business == b
}

type TransactionService struct {
	crud crud[models.Transaction]
}

func (s *TransactionService) List(ctx context.Context, filter BusinessFilter) ([]models.Transaction, error) {
	return s.crud.list(ctx, func(t models.Transaction) bool { return filter.matches(t.Business) })
}

func (s *TransactionService) Create(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	return s.crud.create(ctx, func(id string, _ time.Time) models.Transaction {
		return models.Transaction{
			ID:          id,
			Date:        in.Date,
			Description: in.Description,
			Amount:      in.Amount,
			Type:        in.Type,
			Category:    in.Category,
			Business:    in.Business,
		}
	})
}

func (s *TransactionService) Update(ctx context.Context, id string, patch models.TransactionPatch) (models.Transaction, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type StrainService struct {
	crud crud[models.Strain]
}

func (s *StrainService) List(ctx context.Context) ([]models.Strain, error) {
	return s.crud.list(ctx, nil)
}

// Create stamps DateAdded with the creation time.
func (s *StrainService) Create(ctx context.Context, in models.StrainInput) (models.Strain, error) {
	return s.crud.create(ctx, func(id string, now time.Time) models.Strain {
		return models.Strain{
			ID:            id,
			Name:          in.Name,
			Type:          in.Type,
			THCPercentage: in.THCPercentage,
			CBDPercentage: in.CBDPercentage,
			Notes:         in.Notes,
			DateAdded:     now,
		}
	})
}

func (s *StrainService) Update(ctx context.Context, id string, patch models.StrainPatch) (models.Strain, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *StrainService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type CustomerService struct {
	crud crud[models.Customer]
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.crud.list(ctx, nil)
}

// Create starts a customer with no orders, an order date of now and the
// Active status.
func (s *CustomerService) Create(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	return s.crud.create(ctx, func(id string, now time.Time) models.Customer {
		return models.Customer{
			ID:            id,
			Name:          in.Name,
			Email:         in.Email,
			Phone:         in.Phone,
			Company:       in.Company,
			TotalOrders:   0,
			TotalSpent:    0,
			LastOrderDate: &now,
			Status:        models.CustomerActive,
		}
	})
}

func (s *CustomerService) Update(ctx context.Context, id string, patch models.CustomerPatch) (models.Customer, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type SupplierService struct {
	crud crud[models.Supplier]
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	return s.crud.list(ctx, nil)
}

func (s *SupplierService) Create(ctx context.Context, in models.SupplierInput) (models.Supplier, error) {
	return s.crud.create(ctx, func(id string, now time.Time) models.Supplier {
		return models.Supplier{
			ID:              id,
			Name:            in.Name,
			ContactPerson:   in.ContactPerson,
			Email:           in.Email,
			Phone:           in.Phone,
			ProductCategory: in.ProductCategory,
			LastOrderDate:   now,
			Rating:          in.Rating,
		}
	})
}

func (s *SupplierService) Update(ctx context.Context, id string, patch models.SupplierPatch) (models.Supplier, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type EquipmentService struct {
	crud crud[models.EquipmentItem]
}

func (s *EquipmentService) List(ctx context.Context) ([]models.EquipmentItem, error) {
	return s.crud.list(ctx, nil)
}

func (s *EquipmentService) Create(ctx context.Context, in models.EquipmentInput) (models.EquipmentItem, error) {
	return s.crud.create(ctx, func(id string, now time.Time) models.EquipmentItem {
		purchased := in.PurchaseDate
		if purchased.IsZero() {
			purchased = now
		}
		return models.EquipmentItem{
			ID:           id,
			Name:         in.Name,
			Type:         in.Type,
			PurchaseDate: purchased,
			Status:       in.Status,
			Location:     in.Location,
			AssignedTo:   in.AssignedTo,
		}
	})
}

func (s *EquipmentService) Update(ctx context.Context, id string, patch models.EquipmentPatch) (models.EquipmentItem, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type ComplianceService struct {
	crud crud[models.ComplianceDoc]
}

func (s *ComplianceService) List(ctx context.Context, filter BusinessFilter) ([]models.ComplianceDoc, error) {
	return s.crud.list(ctx, func(d models.ComplianceDoc) bool { return filter.matches(d.Business) })
}

func (s *ComplianceService) Create(ctx context.Context, in models.ComplianceInput) (models.ComplianceDoc, error) {
	return s.crud.create(ctx, func(id string, _ time.Time) models.ComplianceDoc {
		return models.ComplianceDoc{
			ID:          id,
			Title:       in.Title,
			Type:        in.Type,
			Status:      in.Status,
			ExpiryDate:  in.ExpiryDate,
			Business:    in.Business,
			Description: in.Description,
		}
	})
}

func (s *ComplianceService) Update(ctx context.Context, id string, patch models.CompliancePatch) (models.ComplianceDoc, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *ComplianceService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type TaskService struct {
	crud crud[models.Task]
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.crud.list(ctx, nil)
}

func (s *TaskService) Create(ctx context.Context, in models.TaskInput) (models.Task, error) {
	return s.crud.create(ctx, func(id string, _ time.Time) models.Task {
		return models.Task{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Assignee:    in.Assignee,
			DueDate:     in.DueDate,
			Status:      in.Status,
			Priority:    in.Priority,
		}
	})
}

func (s *TaskService) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}

type EventService struct {
	crud crud[models.CalendarEvent]
}

func (s *EventService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.crud.list(ctx, nil)
}

func (s *EventService) Create(ctx context.Context, in models.EventInput) (models.CalendarEvent, error) {
	return s.crud.create(ctx, func(id string, _ time.Time) models.CalendarEvent {
		return models.CalendarEvent{
			ID:          id,
			Title:       in.Title,
			Date:        in.Date,
			Time:        in.Time,
			Type:        in.Type,
			Description: in.Description,
			Cost:        in.Cost,
			Location:    in.Location,
		}
	})
}

func (s *EventService) Update(ctx context.Context, id string, patch models.EventPatch) (models.CalendarEvent, error) {
	return s.crud.update(ctx, id, patch.Apply)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, id)
}
