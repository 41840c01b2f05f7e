package repository

import (
	"context"
	"fmt"

	"ship_telemetry/internal/app/ds"
	"ship_telemetry/internal/app/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned for both unknown users and wrong passwords,
// so a caller cannot tell the two apart.
var ErrBadCredentials = fmt.Errorf("incorrect username or password")

// GetUserByUsername returns the user by username.
func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.Where("username = ?", username).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user by primary key.
func (r *Repository) GetUserByID(id int) (*ds.User, error) {
	user := &ds.User{}
	if err := r.db.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password with bcrypt and persists the user.
// A duplicate username surfaces as gorm.ErrDuplicatedKey from the unique
// constraint; there is no read-before-write check.
func (r *Repository) CreateUser(username, password string) (*ds.User, error) {
	if password == "" {
		return nil, fmt.Errorf("password is empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt generate error: %w", err)
	}
	user := &ds.User{Username: username, HashedPassword: string(hashed)}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when username+password are valid and
// ErrBadCredentials otherwise.
func (r *Repository) Authenticate(username, password string) (*ds.User, error) {
	user, err := r.GetUserByUsername(username)
	if err != nil {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// LoginUser verifies credentials and issues a signed access token. When redis
// is configured the token is recorded under jwt:<username> with the token TTL.
func (r *Repository) LoginUser(username, password string) (string, error) {
	user, err := r.Authenticate(username, password)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateJWT(user.Username, r.jwtKey, r.tokenLifetime)
	if err != nil {
		return "", fmt.Errorf("jwt sign error: %w", err)
	}

	if err := r.SaveJWTToken(user.Username, token); err != nil {
		return "", fmt.Errorf("save jwt token error: %w", err)
	}
	return token, nil
}

// SaveJWTToken stores the issued token in redis with the token lifetime as
// TTL. A nil redis client makes this a no-op.
func (r *Repository) SaveJWTToken(username, token string) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Set(context.Background(), "jwt:"+username, token, r.tokenLifetime).Err()
}

// LogoutUser drops the stored token for username.
func (r *Repository) LogoutUser(username string) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(context.Background(), "jwt:"+username).Err()
}
