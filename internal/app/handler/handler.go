package handler

import (
	"ship_telemetry/internal/app/handler/api"
	"ship_telemetry/internal/app/handler/middleware"
	"ship_telemetry/internal/app/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repository          *repository.Repository
	UserAPIHandler      *api.UserHandler
	ShipAPIHandler      *api.ShipHandler
	TelemetryAPIHandler *api.TelemetryHandler
}

func NewHandler(rep *repository.Repository) *Handler {
	return &Handler{
		Repository:          rep,
		UserAPIHandler:      &api.UserHandler{Repository: rep},
		ShipAPIHandler:      &api.ShipHandler{Repository: rep},
		TelemetryAPIHandler: &api.TelemetryHandler{Repository: rep},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// open surface: token issuance, registration, ingestion
	router.POST("/token", h.UserAPIHandler.TokenAPI)
	router.POST("/users/", h.UserAPIHandler.RegisterUserAPI)
	router.POST("/telemetry/:mmsi", h.TelemetryAPIHandler.IngestTelemetryAPI)

	authGroup := router.Group("/", middleware.AuthMiddleware(h.Repository))
	{
		authGroup.GET("/users/me", h.UserAPIHandler.MeAPI)
		authGroup.POST("/logout", h.UserAPIHandler.LogoutUserAPI)

		authGroup.POST("/ships/", h.ShipAPIHandler.CreateShipAPI)
		authGroup.GET("/ships/", h.ShipAPIHandler.GetShipsAPI)
		authGroup.GET("/ships/overview", h.ShipAPIHandler.GetShipsOverviewAPI)

		authGroup.GET("/telemetry/:mmsi", h.TelemetryAPIHandler.GetTelemetryAPI)
	}
}
