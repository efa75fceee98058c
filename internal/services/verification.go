package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
	"github.com/cardcast-dev/cardcast/internal/ws"
)

type VerificationService struct {
	db    *gorm.DB
	teams *TeamService
	hub   *ws.Hub
}

func NewVerificationService(db *gorm.DB, teams *TeamService, hub *ws.Hub) *VerificationService {
	return &VerificationService{db: db, teams: teams, hub: hub}
}

// VerifyPrediction records a correct/incorrect judgment with the verifier
// and a server-assigned timestamp. Only active admin members of the card's
// team may verify.
func (s *VerificationService) VerifyPrediction(cardID, predictionID, verifierID uint, isCorrect bool) (*models.Prediction, error) {
	card, err := s.cardByID(cardID)

	if err != nil {
		return nil, err
	}

	membership, err := s.teams.Membership(card.TeamID, verifierID)

	if err != nil {
		return nil, err
	}

	if membership.Role != types.RoleAdmin {
		return nil, ErrNotTeamAdmin
	}

	prediction, err := s.predictionOnCard(cardID, predictionID)

	if err != nil {
		return nil, err
	}

	status := types.StatusIncorrect
	if isCorrect {
		status = types.StatusCorrect
	}

	now := time.Now()
	prediction.Status = status
	prediction.VerifiedByID = &verifierID
	prediction.VerifiedAt = &now

	if err := s.db.Save(prediction).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(card.TeamID, ws.Message{
			Type: "prediction_verified",
			Data: map[string]interface{}{
				"card_id":       card.ID,
				"prediction_id": prediction.ID,
				"position":      prediction.Position,
				"status":        prediction.Status,
				"verified_by":   verifierID,
			},
		})
	}

	return prediction, nil
}

// SubmitEvidence appends an immutable evidence record. Submissions are
// never deduplicated.
func (s *VerificationService) SubmitEvidence(cardID, predictionID, submitterID uint, url, text string) (*models.VerificationEvidence, error) {
	card, err := s.cardByID(cardID)

	if err != nil {
		return nil, err
	}

	if _, err := s.teams.Membership(card.TeamID, submitterID); err != nil {
		return nil, err
	}

	prediction, err := s.predictionOnCard(cardID, predictionID)

	if err != nil {
		return nil, err
	}

	evidence := models.VerificationEvidence{
		PredictionID:  prediction.ID,
		EvidenceURL:   url,
		EvidenceText:  text,
		SubmittedByID: submitterID,
	}

	if err := s.db.Create(&evidence).Error; err != nil {
		return nil, err
	}

	return &evidence, nil
}

// ListEvidence returns a prediction's evidence, newest first.
func (s *VerificationService) ListEvidence(cardID, predictionID, callerID uint) ([]models.VerificationEvidence, error) {
	card, err := s.cardByID(cardID)

	if err != nil {
		return nil, err
	}

	if _, err := s.teams.Membership(card.TeamID, callerID); err != nil {
		return nil, err
	}

	if _, err := s.predictionOnCard(cardID, predictionID); err != nil {
		return nil, err
	}

	var evidence []models.VerificationEvidence

	err = s.db.
		Where("prediction_id = ?", predictionID).
		Order("created_at DESC").
		Find(&evidence).Error

	if err != nil {
		return nil, err
	}

	return evidence, nil
}

func (s *VerificationService) cardByID(cardID uint) (*models.BingoCard, error) {
	var card models.BingoCard

	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return &card, nil
}

func (s *VerificationService) predictionOnCard(cardID, predictionID uint) (*models.Prediction, error) {
	var prediction models.Prediction

	err := s.db.Where("id = ? AND bingo_card_id = ?", predictionID, cardID).First(&prediction).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}

	return &prediction, nil
}
