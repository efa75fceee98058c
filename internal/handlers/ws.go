package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cardcast-dev/cardcast/internal/services"
	"github.com/cardcast-dev/cardcast/internal/types"
	"github.com/cardcast-dev/cardcast/internal/utils"
	"github.com/cardcast-dev/cardcast/internal/ws"
)

type WSHandler struct {
	hub   *ws.Hub
	teams *services.TeamService
}

func NewWSHandler(hub *ws.Hub, teams *services.TeamService) *WSHandler {
	return &WSHandler{hub: hub, teams: teams}
}

// TeamFeed upgrades the connection and streams verification events for a
// team to its active members.
func (h *WSHandler) TeamFeed(ctx *gin.Context) {
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

	if _, err := h.teams.Membership(teamID, userID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)

	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.AddConnection(teamID, conn)
	defer h.hub.RemoveConnection(teamID, conn)

	if err := conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "WebSocket connection established",
		"team_id": teamID,
	}); err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	// Drain client frames until the connection drops; the hub does all
	// the writing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
