package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a fixed-scope engagement posted by a company.
type Project struct {
	gorm.Model

	CompanyID    uint   `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	Description  string
	Duration     string
	Modality     string
	Remuneration string
	Format       string
	Criteria     string
	Skills       datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
