package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/services"
	"github.com/cardcast-dev/cardcast/internal/utils"
)

type CardHandler struct {
	cards         *services.CardService
	verifications *services.VerificationService
}

func NewCardHandler(cards *services.CardService, verifications *services.VerificationService) *CardHandler {
	return &CardHandler{cards: cards, verifications: verifications}
}

type CreateCardRequest struct {
	Team uint `json:"team" binding:"required"`
	Year int  `json:"year" binding:"required"`
}

type UpdatePredictionRequest struct {
	Position       *int   `json:"position" binding:"required"`
	PredictionText string `json:"prediction_text"`
	Category       string `json:"category" binding:"required"`
	TargetPeriod   string `json:"target_period"`
}

type VerifyPredictionRequest struct {
	PredictionID uint `json:"prediction_id" binding:"required"`
	IsCorrect    bool `json:"is_correct"`
}

type SubmitEvidenceRequest struct {
	PredictionID uint   `json:"prediction_id" binding:"required"`
	EvidenceURL  string `json:"evidence_url" binding:"required,url"`
	EvidenceText string `json:"evidence_text"`
}

type PredictionResponse struct {
	ID             uint       `json:"id"`
	Position       int        `json:"position"`
	Category       string     `json:"category"`
	PredictionText string     `json:"prediction_text"`
	TargetPeriod   string     `json:"target_period"`
	Status         string     `json:"status"`
	VerifiedBy     *uint      `json:"verified_by"`
	VerifiedAt     *time.Time `json:"verified_at"`
}

type CardResponse struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user"`
	TeamID      uint                 `json:"team"`
	Year        int                  `json:"year"`
	IsFinalized bool                 `json:"is_finalized"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	Predictions []PredictionResponse `json:"predictions"`
}

type EvidenceResponse struct {
	ID           uint      `json:"id"`
	PredictionID uint      `json:"prediction"`
	EvidenceURL  string    `json:"evidence_url"`
	EvidenceText string    `json:"evidence_text"`
	SubmittedBy  uint      `json:"submitted_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateCard makes the caller's card for a team and year. The 25 empty
// prediction slots come back nested in the response.
func (h *CardHandler) CreateCard(ctx *gin.Context) {
	var req CreateCardRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	card, err := h.cards.Create(userID, req.Team, req.Year)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cardResponse(card))
}

func (h *CardHandler) ListCards(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cards, err := h.cards.ListForUser(userID)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	response := make([]CardResponse, 0, len(cards))

	for i := range cards {
		response = append(response, cardResponse(&cards[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *CardHandler) GetCard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetUintParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cards.GetForUser(cardID, userID)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) UpdatePrediction(ctx *gin.Context) {
	var req UpdatePredictionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetUintParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.cards.UpdatePrediction(cardID, userID, services.UpdatePredictionInput{
		Position:       *req.Position,
		PredictionText: req.PredictionText,
		Category:       req.Category,
		TargetPeriod:   req.TargetPeriod,
	})

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, predictionResponse(prediction))
}

func (h *CardHandler) FinalizeCard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetUintParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cards.Finalize(cardID, userID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "card finalized"})
}

func (h *CardHandler) VerifyPrediction(ctx *gin.Context) {
	var req VerifyPredictionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetUintParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.verifications.VerifyPrediction(cardID, req.PredictionID, userID, req.IsCorrect)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "prediction verified",
		"prediction": predictionResponse(prediction),
	})
}

func (h *CardHandler) SubmitEvidence(ctx *gin.Context) {
	var req SubmitEvidenceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetUintParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evidence, err := h.verifications.SubmitEvidence(cardID, req.PredictionID, userID, req.EvidenceURL, req.EvidenceText)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, evidenceResponse(evidence))
}

func (h *CardHandler) ListEvidence(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetUintParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	predictionID, err := utils.GetUintParam(ctx, "prediction_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evidence, err := h.verifications.ListEvidence(cardID, predictionID, userID)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	response := make([]EvidenceResponse, 0, len(evidence))

	for i := range evidence {
		response = append(response, evidenceResponse(&evidence[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func cardResponse(card *models.BingoCard) CardResponse {
	predictions := make([]PredictionResponse, 0, len(card.Predictions))

	for i := range card.Predictions {
		predictions = append(predictions, predictionResponse(&card.Predictions[i]))
	}

	return CardResponse{
		ID:          card.ID,
		UserID:      card.UserID,
		TeamID:      card.TeamID,
		Year:        card.Year,
		IsFinalized: card.IsFinalized,
		IsActive:    card.IsActive,
		CreatedAt:   card.CreatedAt,
		Predictions: predictions,
	}
}

func predictionResponse(prediction *models.Prediction) PredictionResponse {
	return PredictionResponse{
		ID:             prediction.ID,
		Position:       prediction.Position,
		Category:       prediction.Category,
		PredictionText: prediction.PredictionText,
		TargetPeriod:   prediction.TargetPeriod,
		Status:         prediction.Status,
		VerifiedBy:     prediction.VerifiedByID,
		VerifiedAt:     prediction.VerifiedAt,
	}
}

func evidenceResponse(evidence *models.VerificationEvidence) EvidenceResponse {
	return EvidenceResponse{
		ID:           evidence.ID,
		PredictionID: evidence.PredictionID,
		EvidenceURL:  evidence.EvidenceURL,
		EvidenceText: evidence.EvidenceText,
		SubmittedBy:  evidence.SubmittedByID,
		CreatedAt:    evidence.CreatedAt,
	}
}
