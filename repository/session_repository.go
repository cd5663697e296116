package repository

import (
	"context"

	"github.com/akinalp/perkmanager/models"
)

// SessionRepository, sunucu taraflı oturum satırları için interface.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
