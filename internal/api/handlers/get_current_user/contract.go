package get_current_user

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/auth/models"
)

type AuthService interface {
	GetMe(ctx context.Context, userID string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
