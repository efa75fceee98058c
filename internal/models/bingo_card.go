package models

import "gorm.io/gorm"

// BingoCard is one user's yearly 5x5 grid for a team. Its 25 prediction
// slots are created eagerly at card creation and deleted with the card.
type BingoCard struct {
	gorm.Model

	UserID      uint `gorm:"not null;uniqueIndex:idx_user_team_year"`
	TeamID      uint `gorm:"not null;uniqueIndex:idx_user_team_year"`
	Year        int  `gorm:"not null;uniqueIndex:idx_user_team_year"`
	IsFinalized bool `gorm:"not null;default:false"`
	IsActive    bool `gorm:"not null;default:true"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Team        Team         `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Predictions []Prediction `gorm:"foreignKey:BingoCardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
