package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job is a salaried position posted by a company.
type Job struct {
	gorm.Model

	CompanyID    uint   `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	Description  string
	Location     string
	Modality     string // "remote", "hybrid", "onsite"
	Remuneration string
	Duration     string
	Skills       datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
