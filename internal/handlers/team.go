package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/services"
	"github.com/cardcast-dev/cardcast/internal/utils"
)

type TeamHandler struct {
	teams *services.TeamService
}

func NewTeamHandler(teams *services.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

type CreateTeamRequest struct {
	Name     string                 `json:"name" binding:"required,max=100"`
	Settings map[string]interface{} `json:"settings"`
}

type TeamResponse struct {
	ID        uint                   `json:"id"`
	Name      string                 `json:"name"`
	CreatedBy uint                   `json:"created_by"`
	IsActive  bool                   `json:"is_active"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type MembershipResponse struct {
	ID       uint      `json:"id"`
	TeamID   uint      `json:"team"`
	UserID   uint      `json:"user"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
	IsActive bool      `json:"is_active"`
}

func (h *TeamHandler) CreateTeam(ctx *gin.Context) {
	var req CreateTeamRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var settings datatypes.JSON

	if req.Settings != nil {
		raw, err := json.Marshal(req.Settings)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings format"})
			return
		}
		settings = raw
	}

	team, err := h.teams.Create(userID, req.Name, settings)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, teamResponse(team))
}

func (h *TeamHandler) ListTeams(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teams, err := h.teams.ListForUser(userID)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	response := make([]TeamResponse, 0, len(teams))

	for i := range teams {
		response = append(response, teamResponse(&teams[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TeamHandler) GetTeam(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := utils.GetUintParam(ctx, "team_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.GetForUser(teamID, userID)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	memberships := make([]MembershipResponse, 0, len(team.TeamMemberships))

	for _, m := range team.TeamMemberships {
		memberships = append(memberships, membershipResponse(&m))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"team":    teamResponse(team),
		"members": memberships,
	})
}

// JoinTeam is idempotent: joining a team you already belong to succeeds
// without creating a second membership.
func (h *TeamHandler) JoinTeam(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := utils.GetUintParam(ctx, "team_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.teams.Join(teamID, userID)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "joined team",
		"membership": membershipResponse(membership),
	})
}

func teamResponse(team *models.Team) TeamResponse {
	response := TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CreatedBy: team.CreatedByID,
		IsActive:  team.IsActive,
		CreatedAt: team.CreatedAt,
	}

	if len(team.Settings) > 0 {
		var settings map[string]interface{}
		if err := json.Unmarshal(team.Settings, &settings); err == nil {
			response.Settings = settings
		}
	}

	return response
}

func membershipResponse(membership *models.TeamMembership) MembershipResponse {
	return MembershipResponse{
		ID:       membership.ID,
		TeamID:   membership.TeamID,
		UserID:   membership.UserID,
		Role:     membership.Role,
		JoinedAt: membership.JoinedAt,
		IsActive: membership.IsActive,
	}
}
