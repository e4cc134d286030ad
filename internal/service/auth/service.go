package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opentrip/OTS-Backend/internal/domain"
	userRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/user"
	"github.com/opentrip/OTS-Backend/internal/service/auth/models"
)

// Service сервис аутентификации и управления пользователями
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя
// Пароль хешируется bcrypt, username и email должны быть уникальны
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user username=%s", req.Username)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: invalid request for username=%s: %v", req.Username, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		IsActive:     true,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("Register: username=%s or email already taken", req.Username)
			return nil, ErrUserExists
		}
		s.logger.Error("Register: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%s", created.ID)
	return models.FromDomainUser(created), nil
}

// Login проверяет учётные данные и выпускает access токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	s.logger.Info("Login: login attempt for username=%s", req.Username)

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user username=%s not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login: user username=%s is deactivated", req.Username)
		return nil, ErrUserInactive
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful login for user id=%s", user.ID)
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// GetMe возвращает профиль текущего пользователя
func (s *Service) GetMe(ctx context.Context, userID string) (*models.UserResponse, error) {
	s.logger.Info("GetMe: fetching user id=%s", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetMe: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetMe: repository error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetMe - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// validateRegisterRequest проверяет поля запроса регистрации
// Ограничение в 72 байта на пароль идёт от bcrypt
func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if len(req.Password) > domain.MaxPasswordBytes {
		return fmt.Errorf("%w: password must not exceed %d bytes", ErrInvalidInput, domain.MaxPasswordBytes)
	}
	return nil
}
