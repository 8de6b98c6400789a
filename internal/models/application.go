package models

import "gorm.io/gorm"

// Application is one user's candidacy against one posting. A user can hold at
// most one Application per posting, enforced by the composite unique index.
// The posting is referenced by kind + id because jobs and projects live in
// separate tables; CompanyID is denormalized at apply time so owner-side
// queries never need a two-table join.
type Application struct {
	gorm.Model

	UserID      uint   `gorm:"not null;uniqueIndex:idx_user_posting"`
	PostingKind string `gorm:"not null;uniqueIndex:idx_user_posting"` // "job" or "project"
	PostingID   uint   `gorm:"not null;uniqueIndex:idx_user_posting"`
	CompanyID   uint   `gorm:"not null;index"`
	Status      string `gorm:"not null;index"`

	// Read-flags for the notification counters. Mutated independently of Status.
	SeenByApplicant bool `gorm:"not null;default:false"`
	SeenByOwner     bool `gorm:"not null;default:false"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
