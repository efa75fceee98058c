package models

import (
	"time"

	"gorm.io/gorm"
)

// Prediction is one slot on a card, identified by (card, position).
type Prediction struct {
	gorm.Model

	BingoCardID    uint   `gorm:"not null;uniqueIndex:idx_card_position"`
	Position       int    `gorm:"not null;uniqueIndex:idx_card_position"` // 0-24
	Category       string `gorm:"not null"`                               // politics, economics, society, wildcard; pending until filled
	PredictionText string
	TargetPeriod   string `gorm:"not null"` // Q2, Q3 or Q4; Q1 is excluded by rule
	Status         string `gorm:"not null;default:pending"`
	VerifiedByID   *uint  `gorm:"index"`
	VerifiedAt     *time.Time

	// Relationships
	BingoCard  BingoCard              `gorm:"foreignKey:BingoCardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	VerifiedBy *User                  `gorm:"foreignKey:VerifiedByID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Evidence   []VerificationEvidence `gorm:"foreignKey:PredictionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
