package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMembership joins users to teams. The composite unique index is what
// makes concurrent joins safe: the loser of a race hits the constraint and
// picks up the existing row.
type TeamMembership struct {
	gorm.Model

	TeamID   uint      `gorm:"not null;uniqueIndex:idx_team_user"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_team_user"`
	Role     string    `gorm:"not null;default:member"` // "admin" or "member"
	JoinedAt time.Time `gorm:"not null"`
	IsActive bool      `gorm:"not null;default:true"`

	// Relationships
	Team Team `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
