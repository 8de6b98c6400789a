package models

import "gorm.io/gorm"

// User is an individual account that applies to jobs and projects.
type User struct {
	gorm.Model

	Name         string `gorm:"not null"`
	Surname      string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string
	City         string
	Profession   string

	// Relationships
	Applications      []Application      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CompletedProjects []CompletedProject `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
