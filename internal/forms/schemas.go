package forms

import (
	"time"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

// TransactionForm is collected on a business page; the business unit comes
// from the page, not the form.
type TransactionForm struct {
	Date        time.Time              `json:"date" form:"date" time_format:"2006-01-02" validate:"required" message:"Date is required."`
	Description string                 `json:"description" form:"description" validate:"required,min=1" message:"Description is required."`
	Amount      float64                `json:"amount" form:"amount" validate:"gt=0" message:"Amount must be a positive number."`
	Type        models.TransactionType `json:"type" form:"type" validate:"required,enum" message:"Type is required."`
	Category    string                 `json:"category" form:"category"`
}

func (f TransactionForm) ToInput(business models.Business) models.TransactionInput {
	return models.TransactionInput{
		Date:        f.Date,
		Description: f.Description,
		Amount:      f.Amount,
		Type:        f.Type,
		Category:    f.Category,
		Business:    business,
	}
}

func (f TransactionForm) ToPatch() models.TransactionPatch {
	return models.TransactionPatch{
		Date:        &f.Date,
		Description: &f.Description,
		Amount:      &f.Amount,
		Type:        &f.Type,
		Category:    &f.Category,
	}
}

type StrainForm struct {
	Name          string            `json:"name" form:"name" validate:"required,min=1" message:"Strain name is required."`
	Type          models.StrainType `json:"type" form:"type" validate:"required,enum" message:"Strain type is required."`
	THCPercentage *float64          `json:"thcPercentage" form:"thcPercentage" validate:"omitempty,min=0,max=100" message:"THC % must be between 0 and 100."`
	CBDPercentage *float64          `json:"cbdPercentage" form:"cbdPercentage" validate:"omitempty,min=0,max=100" message:"CBD % must be between 0 and 100."`
	Notes         string            `json:"notes" form:"notes"`
}

func (f StrainForm) ToInput() models.StrainInput {
	return models.StrainInput{
		Name:          f.Name,
		Type:          f.Type,
		THCPercentage: f.THCPercentage,
		CBDPercentage: f.CBDPercentage,
		Notes:         f.Notes,
	}
}

func (f StrainForm) ToPatch() models.StrainPatch {
	return models.StrainPatch{
		Name:          &f.Name,
		Type:          &f.Type,
		THCPercentage: f.THCPercentage,
		CBDPercentage: f.CBDPercentage,
		Notes:         &f.Notes,
	}
}

// CustomerForm collects contact details. Status is only honoured on edit;
// new customers always start Active.
type CustomerForm struct {
	Name    string                `json:"name" form:"name" validate:"required,min=2" message:"Name must be at least 2 characters"`
	Email   string                `json:"email" form:"email" validate:"required,email" message:"Invalid email address"`
	Phone   string                `json:"phone" form:"phone" validate:"omitempty,min=7" message:"Phone number must be at least 7 characters"`
	Company string                `json:"company" form:"company"`
	Status  models.CustomerStatus `json:"status" form:"status" validate:"omitempty,enum" message:"Status must be Active, Inactive or Lead."`
}

func (f CustomerForm) ToInput() models.CustomerInput {
	return models.CustomerInput{Name: f.Name, Email: f.Email, Phone: f.Phone, Company: f.Company}
}

func (f CustomerForm) ToPatch() models.CustomerPatch {
	patch := models.CustomerPatch{Name: &f.Name, Email: &f.Email, Phone: &f.Phone, Company: &f.Company}
	if f.Status != "" {
		patch.Status = &f.Status
	}
	return patch
}

type SupplierForm struct {
	Name            string `json:"name" form:"name" validate:"required,min=2" message:"Name must be at least 2 characters"`
	ContactPerson   string `json:"contactPerson" form:"contactPerson" validate:"required,min=2" message:"Contact person must be at least 2 characters"`
	Email           string `json:"email" form:"email" validate:"required,email" message:"Invalid email address"`
	Phone           string `json:"phone" form:"phone" validate:"required,min=10" message:"Phone number must be at least 10 characters"`
	ProductCategory string `json:"productCategory" form:"productCategory" validate:"required,min=2" message:"Product category is required"`
	Rating          int    `json:"rating" form:"rating" validate:"min=1,max=5" message:"Rating must be between 1 and 5"`
}

func (f SupplierForm) ToInput() models.SupplierInput {
	return models.SupplierInput{
		Name:            f.Name,
		ContactPerson:   f.ContactPerson,
		Email:           f.Email,
		Phone:           f.Phone,
		ProductCategory: f.ProductCategory,
		Rating:          f.Rating,
	}
}

func (f SupplierForm) ToPatch() models.SupplierPatch {
	return models.SupplierPatch{
		Name:            &f.Name,
		ContactPerson:   &f.ContactPerson,
		Email:           &f.Email,
		Phone:           &f.Phone,
		ProductCategory: &f.ProductCategory,
		Rating:          &f.Rating,
	}
}

type EquipmentForm struct {
	Name         string                 `json:"name" form:"name" validate:"required,min=2" message:"Name must be at least 2 characters"`
	Type         string                 `json:"type" form:"type" validate:"required,min=2" message:"Type is required"`
	Status       models.EquipmentStatus `json:"status" form:"status" validate:"required,enum" message:"Status must be Operational, Maintenance, Requires Repair or Decommissioned."`
	Location     string                 `json:"location" form:"location" validate:"required,min=2" message:"Location is required"`
	AssignedTo   string                 `json:"assignedTo" form:"assignedTo"`
	PurchaseDate time.Time              `json:"purchaseDate" form:"purchaseDate" time_format:"2006-01-02"`
}

func (f EquipmentForm) ToInput() models.EquipmentInput {
	return models.EquipmentInput{
		Name:         f.Name,
		Type:         f.Type,
		PurchaseDate: f.PurchaseDate,
		Status:       f.Status,
		Location:     f.Location,
		AssignedTo:   f.AssignedTo,
	}
}

func (f EquipmentForm) ToPatch() models.EquipmentPatch {
	patch := models.EquipmentPatch{
		Name:       &f.Name,
		Type:       &f.Type,
		Status:     &f.Status,
		Location:   &f.Location,
		AssignedTo: &f.AssignedTo,
	}
	if !f.PurchaseDate.IsZero() {
		patch.PurchaseDate = &f.PurchaseDate
	}
	return patch
}

type ComplianceForm struct {
	Title       string                  `json:"title" form:"title" validate:"required,min=2" message:"Title must be at least 2 characters"`
	Type        models.ComplianceType   `json:"type" form:"type" validate:"required,enum" message:"Type must be License, Certificate, Permit or Report."`
	Status      models.ComplianceStatus `json:"status" form:"status" validate:"required,enum" message:"Status must be Valid, Expiring Soon, Expired or Pending."`
	ExpiryDate  time.Time               `json:"expiryDate" form:"expiryDate" time_format:"2006-01-02" validate:"required" message:"Expiry date is required."`
	Business    models.Business         `json:"business" form:"business" validate:"required,enum" message:"Business must be honey, weed, fish or mushrooms."`
	Description string                  `json:"description" form:"description"`
}

func (f ComplianceForm) ToInput() models.ComplianceInput {
	return models.ComplianceInput{
		Title:       f.Title,
		Type:        f.Type,
		Status:      f.Status,
		ExpiryDate:  f.ExpiryDate,
		Business:    f.Business,
		Description: f.Description,
	}
}

func (f ComplianceForm) ToPatch() models.CompliancePatch {
	return models.CompliancePatch{
		Title:       &f.Title,
		Type:        &f.Type,
		Status:      &f.Status,
		ExpiryDate:  &f.ExpiryDate,
		Business:    &f.Business,
		Description: &f.Description,
	}
}

type TaskForm struct {
	Title       string              `json:"title" form:"title" validate:"required,min=2" message:"Title must be at least 2 characters"`
	Description string              `json:"description" form:"description"`
	Assignee    string              `json:"assignee" form:"assignee" validate:"required,min=2" message:"Assignee is required"`
	DueDate     time.Time           `json:"dueDate" form:"dueDate" time_format:"2006-01-02" validate:"required" message:"Due date is required."`
	Status      models.TaskStatus   `json:"status" form:"status" validate:"required,enum" message:"Status must be To Do, In Progress, Done or Blocked."`
	Priority    models.TaskPriority `json:"priority" form:"priority" validate:"required,enum" message:"Priority must be Low, Medium or High."`
}

func (f TaskForm) ToInput() models.TaskInput {
	return models.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		Assignee:    f.Assignee,
		DueDate:     f.DueDate,
		Status:      f.Status,
		Priority:    f.Priority,
	}
}

func (f TaskForm) ToPatch() models.TaskPatch {
	return models.TaskPatch{
		Title:       &f.Title,
		Description: &f.Description,
		Assignee:    &f.Assignee,
		DueDate:     &f.DueDate,
		Status:      &f.Status,
		Priority:    &f.Priority,
	}
}

type EventForm struct {
	Title       string           `json:"title" form:"title" validate:"required,min=1" message:"Title is required."`
	Date        time.Time        `json:"date" form:"date" time_format:"2006-01-02" validate:"required" message:"Date is required."`
	Time        string           `json:"time" form:"time" validate:"omitempty,datetime=15:04" message:"Time must use the HH:MM format."`
	Type        models.EventType `json:"type" form:"type" validate:"required,enum" message:"Type must be market, expenditure, meeting or other."`
	Description string           `json:"description" form:"description"`
	Cost        *float64         `json:"cost" form:"cost" validate:"omitempty,min=0" message:"Cost cannot be negative."`
	Location    string           `json:"location" form:"location"`
}

func (f EventForm) ToInput() models.EventInput {
	return models.EventInput{
		Title:       f.Title,
		Date:        f.Date,
		Time:        f.Time,
		Type:        f.Type,
		Description: f.Description,
		Cost:        f.Cost,
		Location:    f.Location,
	}
}

func (f EventForm) ToPatch() models.EventPatch {
	return models.EventPatch{
		Title:       &f.Title,
		Date:        &f.Date,
		Time:        &f.Time,
		Type:        &f.Type,
		Description: &f.Description,
		Cost:        f.Cost,
		Location:    &f.Location,
	}
}
