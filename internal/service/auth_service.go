package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

type IAuthService interface {
	AdminLogin(req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

// authService issues the admin token guarding config and document endpoints.
// There is a single shared admin password; no user accounts.
type authService struct {
	adminPassword string
	secretKey     string
	logger        logger.ILogger
}

func NewAuthService(adminPassword, secretKey string, log logger.ILogger) IAuthService {
	return &authService{
		adminPassword: adminPassword,
		secretKey:     secretKey,
		logger:        log,
	}
}

func (s *authService) AdminLogin(req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if s.adminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) != 1 {
		s.logger.Warn("auth", "Admin login rejected", nil)
		return nil, fmt.Errorf("invalid password: %w", constant.ErrUnauthorized)
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{Token: signedToken}, nil
}
