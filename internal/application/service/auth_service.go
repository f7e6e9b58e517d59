package service

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jesus1025/ventas-api/internal/config"
	"github.com/Jesus1025/ventas-api/pkg/apperror"
	"github.com/Jesus1025/ventas-api/pkg/utils"
)

// AuthService verifies operator credentials against the configured account
// list and issues session tokens. The ledger trusts the (user_id, name)
// pair carried by a validated token.
type AuthService struct {
	users      []config.UserConfig
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users []config.UserConfig, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// LoginOutput represents a successful login
type LoginOutput struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login checks the credentials and returns a signed access token.
func (s *AuthService) Login(username, password string) (*LoginOutput, error) {
	for _, u := range s.users {
		if u.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			break
		}

		token, err := s.jwtManager.GenerateAccessToken(u.Username, u.Name)
		if err != nil {
			s.logger.Error("failed to sign access token", zap.String("username", username), zap.Error(err))
			return nil, apperror.ErrInternalServer
		}

		s.logger.Info("operator logged in", zap.String("username", username))
		return &LoginOutput{
			Token:    token,
			Username: u.Username,
			Name:     u.Name,
		}, nil
	}

	s.logger.Warn("rejected login attempt", zap.String("username", username))
	return nil, apperror.ErrInvalidCredentials
}
