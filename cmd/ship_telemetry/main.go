package main

// go run cmd/ship_telemetry/main.go

import (
	"ship_telemetry/internal/app/config"
	"ship_telemetry/internal/app/dsn"
	"ship_telemetry/internal/app/handler"
	"ship_telemetry/internal/app/pkg"
	"ship_telemetry/internal/app/repository"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "ship_telemetry/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ship Telemetry API
// @version 1.0
// @description Fleet telemetry backend: ships push sensor readings, clients query history and latest positions.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	rep, err := repository.New(
		"postgres", dsn.FromEnv(),
		conf.RedisEndpoint, conf.RedisPassword,
		conf.JwtKey, time.Duration(conf.TokenLifetimeMin)*time.Minute,
	)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	hand := handler.NewHandler(rep)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
