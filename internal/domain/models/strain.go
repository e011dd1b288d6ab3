package models

import "time"

type StrainType string

const (
	StrainIndica StrainType = "Indica"
	StrainSativa StrainType = "Sativa"
	StrainHybrid StrainType = "Hybrid"
)

func (s StrainType) IsValid() bool {
	switch s {
	case StrainIndica, StrainSativa, StrainHybrid:
		return true
	}
	return false
}

// Strain is a cannabis cultivar tracked by the weed business.
type Strain struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          StrainType `json:"type"`
	THCPercentage *float64   `json:"thcPercentage,omitempty"`
	CBDPercentage *float64   `json:"cbdPercentage,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	DateAdded     time.Time  `json:"dateAdded"`
}

func (s Strain) Identity() string { return s.ID }

// Clone returns a copy that shares no pointers with s.
func (s Strain) Clone() Strain {
	s.THCPercentage = cloneFloat(s.THCPercentage)
	s.CBDPercentage = cloneFloat(s.CBDPercentage)
	return s
}

type StrainInput struct {
	Name          string
	Type          StrainType
	THCPercentage *float64
	CBDPercentage *float64
	Notes         string
}

type StrainPatch struct {
	Name          *string
	Type          *StrainType
	THCPercentage *float64
	CBDPercentage *float64
	Notes         *string
}

func (p StrainPatch) Apply(s *Strain) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.THCPercentage != nil {
		s.THCPercentage = cloneFloat(p.THCPercentage)
	}
	if p.CBDPercentage != nil {
		s.CBDPercentage = cloneFloat(p.CBDPercentage)
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}
