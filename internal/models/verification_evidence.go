package models

import "gorm.io/gorm"

// VerificationEvidence is an append-only record supporting a verification
// judgment. Rows are never updated or deduplicated.
type VerificationEvidence struct {
	gorm.Model

	PredictionID  uint   `gorm:"not null;index"`
	EvidenceURL   string `gorm:"not null"`
	EvidenceText  string
	SubmittedByID uint   `gorm:"not null;index"`

	// Relationships
	Prediction  Prediction `gorm:"foreignKey:PredictionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SubmittedBy User       `gorm:"foreignKey:SubmittedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
