package repository

import (
	"context"

	"github.com/akinalp/perkmanager/models"
)

// MembershipRepository, membership kataloğu işlemleri için interface.
type MembershipRepository interface {
	// Create, yeni membership ekler. İsim çakışması (case-insensitive)
	// pkg.ErrAlreadyExists olarak döner.
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, id int64) (*models.Membership, error)
	// GetByIDs, verilen id'lere karşılık gelen membership'leri döner.
	// Bilinmeyen id'ler sessizce atlanır — sonuç istenen listenin alt kümesidir.
	GetByIDs(ctx context.Context, ids []int64) ([]models.Membership, error)
	// GetAll, tüm membership'leri isme göre alfabetik döner.
	GetAll(ctx context.Context) ([]models.Membership, error)
	Count(ctx context.Context) (int, error)
}
