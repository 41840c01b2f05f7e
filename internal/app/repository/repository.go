package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db            *gorm.DB
	redis         *redis.Client
	jwtKey        string
	tokenLifetime time.Duration
}

func dialector(driver, source string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(source), nil
	case "postgres":
		return postgres.Open(source), nil
	}
	return nil, fmt.Errorf("unknown driver %s", driver)
}

// New opens the store and, when redisEndpoint is non-empty, the redis client
// used to track issued tokens.
func New(driver, source, redisEndpoint, redisPassword, jwtKey string, tokenLifetime time.Duration) (*Repository, error) {
	dial, err := dialector(driver, source)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if redisEndpoint != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisEndpoint,
			Password: redisPassword,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
	}

	return &Repository{
		db:            db,
		redis:         rdb,
		jwtKey:        jwtKey,
		tokenLifetime: tokenLifetime,
	}, nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) JWTKey() string {
	return r.jwtKey
}

func (r *Repository) TokenLifetime() time.Duration {
	return r.tokenLifetime
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
