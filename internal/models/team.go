package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Team struct {
	gorm.Model

	Name        string `gorm:"uniqueIndex;not null"`
	CreatedByID uint   `gorm:"not null;index"`
	IsActive    bool   `gorm:"not null;default:true"`
	Settings    datatypes.JSON `gorm:"type:jsonb"` // opaque frontend settings (colors, avatar, etc.)

	// Relationships
	CreatedBy       User             `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	TeamMemberships []TeamMembership `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	BingoCards      []BingoCard      `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
