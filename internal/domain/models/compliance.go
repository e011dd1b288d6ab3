package models

import (
	"math"
	"time"
)

type ComplianceType string

const (
	ComplianceLicense     ComplianceType = "License"
	ComplianceCertificate ComplianceType = "Certificate"
	CompliancePermit      ComplianceType = "Permit"
	ComplianceReport      ComplianceType = "Report"
)

func (t ComplianceType) IsValid() bool {
	switch t {
	case ComplianceLicense, ComplianceCertificate, CompliancePermit, ComplianceReport:
		return true
	}
	return false
}

type ComplianceStatus string

const (
	ComplianceValid        ComplianceStatus = "Valid"
	ComplianceExpiringSoon ComplianceStatus = "Expiring Soon"
	ComplianceExpired      ComplianceStatus = "Expired"
	CompliancePending      ComplianceStatus = "Pending"
)

func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceValid, ComplianceExpiringSoon, ComplianceExpired, CompliancePending:
		return true
	}
	return false
}

// ComplianceDoc is a license, permit or certificate held by a business unit.
// Status is stored as entered and is not derived from ExpiryDate.
type ComplianceDoc struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Type        ComplianceType   `json:"type"`
	Status      ComplianceStatus `json:"status"`
	ExpiryDate  time.Time        `json:"expiryDate"`
	Business    Business         `json:"business"`
	Description string           `json:"description,omitempty"`
}

func (d ComplianceDoc) Identity() string { return d.ID }

// DaysUntilExpiry returns the whole days between now and the expiry date,
// negative once the document has expired.
func (d ComplianceDoc) DaysUntilExpiry(now time.Time) int {
	return int(math.Ceil(d.ExpiryDate.Sub(now).Hours() / 24))
}

type ComplianceInput struct {
	Title       string
	Type        ComplianceType
	Status      ComplianceStatus
	ExpiryDate  time.Time
	Business    Business
	Description string
}

type CompliancePatch struct {
	Title       *string
	Type        *ComplianceType
	Status      *ComplianceStatus
	ExpiryDate  *time.Time
	Business    *Business
	Description *string
}

func (p CompliancePatch) Apply(d *ComplianceDoc) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.ExpiryDate != nil {
		d.ExpiryDate = *p.ExpiryDate
	}
	if p.Business != nil {
		d.Business = *p.Business
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
}
