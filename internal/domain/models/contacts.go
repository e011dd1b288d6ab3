package models

import "time"

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
	CustomerLead     CustomerStatus = "Lead"
)

func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerLead:
		return true
	}
	return false
}

// Customer is a buyer across any business unit. TotalOrders and TotalSpent are
// maintained independently of the transaction history.
type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone,omitempty"`
	Company       string         `json:"company,omitempty"`
	TotalOrders   int            `json:"totalOrders"`
	TotalSpent    float64        `json:"totalSpent"`
	LastOrderDate *time.Time     `json:"lastOrderDate,omitempty"`
	Status        CustomerStatus `json:"status"`
}

func (c Customer) Identity() string { return c.ID }

func (c Customer) Clone() Customer {
	c.LastOrderDate = cloneTime(c.LastOrderDate)
	return c
}

// CustomerInput holds the fields collected by the customer form. The order
// counters, last order date and status are defaulted on creation.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

type CustomerPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Company       *string
	TotalOrders   *int
	TotalSpent    *float64
	LastOrderDate *time.Time
	Status        *CustomerStatus
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.TotalOrders != nil {
		c.TotalOrders = *p.TotalOrders
	}
	if p.TotalSpent != nil {
		c.TotalSpent = *p.TotalSpent
	}
	if p.LastOrderDate != nil {
		c.LastOrderDate = cloneTime(p.LastOrderDate)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// Supplier provides goods to one or more business units.
type Supplier struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ContactPerson   string    `json:"contactPerson"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ProductCategory string    `json:"productCategory"`
	LastOrderDate   time.Time `json:"lastOrderDate"`
	Rating          int       `json:"rating"`
}

func (s Supplier) Identity() string { return s.ID }

type SupplierInput struct {
	Name            string
	ContactPerson   string
	Email           string
	Phone           string
	ProductCategory string
	Rating          int
}

type SupplierPatch struct {
	Name            *string
	ContactPerson   *string
	Email           *string
	Phone           *string
	ProductCategory *string
	LastOrderDate   *time.Time
	Rating          *int
}

func (p SupplierPatch) Apply(s *Supplier) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ContactPerson != nil {
		s.ContactPerson = *p.ContactPerson
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.ProductCategory != nil {
		s.ProductCategory = *p.ProductCategory
	}
	if p.LastOrderDate != nil {
		s.LastOrderDate = *p.LastOrderDate
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
}
