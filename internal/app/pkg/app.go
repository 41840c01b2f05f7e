package pkg

import (
	"fmt"

	"ship_telemetry/internal/app/config"
	"ship_telemetry/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, h *handler.Handler) *App {
	return &App{Config: cfg, Router: router, Handler: h}
}

func (a *App) RunApp() {
	a.Handler.SetupRoutes(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("server listening on %s", addr)
	if err := a.Router.Run(addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
