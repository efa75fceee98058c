package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
)

type CardService struct {
	db    *gorm.DB
	teams *TeamService
}

func NewCardService(db *gorm.DB, teams *TeamService) *CardService {
	return &CardService{db: db, teams: teams}
}

// Create makes a card for (user, team, year) and eagerly materializes its
// 25 empty prediction slots in the same transaction.
func (s *CardService) Create(userID, teamID uint, year int) (*models.BingoCard, error) {
	if year < types.MinYear || year > types.MaxYear {
		return nil, ErrYearOutOfRange
	}

	if _, err := s.teams.Membership(teamID, userID); err != nil {
		return nil, err
	}

	var existing models.BingoCard

	err := s.db.Where("user_id = ? AND team_id = ? AND year = ?", userID, teamID, year).First(&existing).Error

	if err == nil {
		return nil, ErrCardExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	card := models.BingoCard{
		UserID:   userID,
		TeamID:   teamID,
		Year:     year,
		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return err
		}

		predictions := make([]models.Prediction, 0, types.CardSize)

		for position := 0; position < types.CardSize; position++ {
			predictions = append(predictions, models.Prediction{
				BingoCardID:  card.ID,
				Position:     position,
				Category:     types.CategoryPending,
				TargetPeriod: types.DefaultPeriod,
				Status:       types.StatusPending,
			})
		}

		return tx.Create(&predictions).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCardExists
		}
		return nil, err
	}

	return s.GetForUser(card.ID, userID)
}

// ListForUser returns the user's cards with predictions preloaded in
// position order.
func (s *CardService) ListForUser(userID uint) ([]models.BingoCard, error) {
	var cards []models.BingoCard

	err := s.db.
		Where("user_id = ?", userID).
		Preload("Predictions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("year DESC").
		Find(&cards).Error

	if err != nil {
		return nil, err
	}

	return cards, nil
}

// GetForUser returns the card only if the user owns it.
func (s *CardService) GetForUser(cardID, userID uint) (*models.BingoCard, error) {
	var card models.BingoCard

	err := s.db.
		Where("id = ? AND user_id = ?", cardID, userID).
		Preload("Predictions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return &card, nil
}

type UpdatePredictionInput struct {
	Position       int
	PredictionText string
	Category       string
	TargetPeriod   string // optional; empty leaves the period unchanged
}

// UpdatePrediction overwrites a slot in place. Rejected once the card is
// finalized; repeated identical calls are no-ops.
func (s *CardService) UpdatePrediction(cardID, userID uint, input UpdatePredictionInput) (*models.Prediction, error) {
	var card models.BingoCard

	err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	if card.IsFinalized {
		return nil, ErrCardFinalized
	}

	if !types.IsValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	if input.TargetPeriod != "" && !types.IsValidPeriod(input.TargetPeriod) {
		return nil, ErrInvalidPeriod
	}

	var prediction models.Prediction

	err = s.db.Where("bingo_card_id = ? AND position = ?", cardID, input.Position).First(&prediction).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}

	prediction.PredictionText = input.PredictionText
	prediction.Category = input.Category

	if input.TargetPeriod != "" {
		prediction.TargetPeriod = input.TargetPeriod
	}

	if err := s.db.Save(&prediction).Error; err != nil {
		return nil, err
	}

	return &prediction, nil
}

// Finalize validates the whole card and flips IsFinalized. Validation
// never mutates predictions, so a failure leaves the card untouched.
// Finalizing an already-finalized card is a no-op success.
func (s *CardService) Finalize(cardID, userID uint) error {
	var card models.BingoCard

	err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCardNotFound
		}
		return err
	}

	if card.IsFinalized {
		return nil
	}

	var predictions []models.Prediction

	if err := s.db.Where("bingo_card_id = ?", cardID).Find(&predictions).Error; err != nil {
		return err
	}

	counts := make(map[string]int)

	for _, prediction := range predictions {
		if prediction.TargetPeriod == types.ExcludedPeriod {
			return fmt.Errorf("%w: slot %d targets %s", ErrExcludedPeriod, prediction.Position, types.ExcludedPeriod)
		}
		counts[prediction.Category]++
	}

	for _, category := range types.QuotaCategories {
		if counts[category] < types.CategoryQuota {
			return fmt.Errorf("%w: category %s has %d predictions, need at least %d",
				ErrQuotaNotMet, category, counts[category], types.CategoryQuota)
		}
	}

	return s.db.Model(&card).Update("is_finalized", true).Error
}
