package auth

import (
	"context"
	"time"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenIssuer интерфейс для выпуска JWT токенов
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
	TTL() time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
