package main

import (
	"ship_telemetry/internal/app/config"
	"ship_telemetry/internal/app/ds"
	"ship_telemetry/internal/app/dsn"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// users first so user_ships can reference them
	err = db.AutoMigrate(&ds.User{})
	if err != nil {
		logrus.Fatalf("error migrating users: %v", err)
	}
	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}
	err = db.AutoMigrate(&ds.UserShip{})
	if err != nil {
		logrus.Fatalf("error migrating user_ships: %v", err)
	}
	err = db.AutoMigrate(&ds.Telemetry{})
	if err != nil {
		logrus.Fatalf("error migrating telemetry: %v", err)
	}

	logrus.Info("Database migration completed")
}
