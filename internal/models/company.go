package models

import "gorm.io/gorm"

// Company is an organization account that owns job and project postings.
type Company struct {
	gorm.Model

	CompanyName  string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string
	Address      string
	City         string
	Sector       string
	Website      string
	Size         string

	// Relationships
	Jobs     []Job     `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Projects []Project `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
