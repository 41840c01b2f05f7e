package main

import (
	"errors"
	"flag"
	"time"

	"ship_telemetry/internal/app/config"
	"ship_telemetry/internal/app/dsn"
	"ship_telemetry/internal/app/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", "admin", "username to create")
	password := flag.String("password", "password123", "password for the user")
	flag.Parse()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New("postgres", dsn.FromEnv(), "", "",
		conf.JwtKey, time.Duration(conf.TokenLifetimeMin)*time.Minute)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer rep.Close()

	if _, err := rep.CreateUser(*username, *password); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Warnf("user %q already exists", *username)
			return
		}
		logrus.Fatalf("error creating user: %v", err)
	}
	logrus.Infof("user %q created", *username)
}
