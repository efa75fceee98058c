package models

import "gorm.io/gorm"

// User is the account model. MustResetPassword is set on creation and
// cleared exactly once by the password-change flow.
type User struct {
	gorm.Model

	Username          string `gorm:"uniqueIndex;not null"`
	Email             string `gorm:"uniqueIndex;not null"`
	Name              string
	PasswordHash      string `gorm:"not null"`
	MustResetPassword bool   `gorm:"not null;default:true"`
	IsActive          bool   `gorm:"not null;default:true"`
	IsStaff           bool   `gorm:"not null;default:false"`

	// Relationships
	CreatedTeams    []Team           `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	TeamMemberships []TeamMembership `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	BingoCards      []BingoCard      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
