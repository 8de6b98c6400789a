package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompletedProject is a denormalized snapshot of a finished engagement, shown
// on the applicant's profile. Posting fields are copied at completion time so
// the record survives later edits or deletion of the posting. Owned
// exclusively by the applicant.
type CompletedProject struct {
	gorm.Model

	UserID        uint   `gorm:"not null;uniqueIndex:idx_user_completed"`
	PostingKind   string `gorm:"not null;uniqueIndex:idx_user_completed"`
	PostingID     uint   `gorm:"not null;uniqueIndex:idx_user_completed"`
	ApplicationID uint   `gorm:"not null;index"`

	Title        string `gorm:"not null"`
	CompanyName  string
	Description  string
	Duration     string
	Modality     string
	Remuneration string
	Skills       datatypes.JSON `gorm:"type:jsonb"`

	StartedAt   time.Time `gorm:"not null"` // when the candidacy was created
	CompletedAt time.Time `gorm:"not null"` // when completion was confirmed

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
