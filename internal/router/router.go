package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cardcast-dev/cardcast/internal/handlers"
	"github.com/cardcast-dev/cardcast/internal/middleware"
	"github.com/cardcast-dev/cardcast/internal/types"
)

type Handlers struct {
	Auth *handlers.AuthHandler
	Team *handlers.TeamHandler
	Card *handlers.CardHandler
	WS   *handlers.WSHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/teams/:team_id", middleware.AuthMiddleware(), middleware.PasswordResetGate(), h.WS.TeamFeed)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)

			// Reachable while the reset gate is up, so a fresh account
			// can complete its forced password change.
			auth.POST("/logout", middleware.AuthMiddleware(), h.Auth.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
			auth.POST("/change-password", middleware.AuthMiddleware(), h.Auth.ChangePassword)
		}

		teams := api.Group("/teams", middleware.AuthMiddleware(), middleware.PasswordResetGate())
		{
			teams.POST("", h.Team.CreateTeam)
			teams.GET("", h.Team.ListTeams)
			teams.GET("/:team_id", h.Team.GetTeam)
			teams.POST("/:team_id/join", h.Team.JoinTeam)
		}

		cards := api.Group("/bingo-cards", middleware.AuthMiddleware(), middleware.PasswordResetGate())
		{
			cards.POST("", h.Card.CreateCard)
			cards.GET("", h.Card.ListCards)
			cards.GET("/:card_id", h.Card.GetCard)
			cards.POST("/:card_id/update_prediction", h.Card.UpdatePrediction)
			cards.POST("/:card_id/finalize", h.Card.FinalizeCard)
			cards.POST("/:card_id/verify_prediction", h.Card.VerifyPrediction)
			cards.POST("/:card_id/submit_evidence", h.Card.SubmitEvidence)
			cards.GET("/:card_id/predictions/:prediction_id/evidence", h.Card.ListEvidence)
		}
	}

	return r
}
