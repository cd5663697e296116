package repository

import (
	"context"

	"github.com/akinalp/perkmanager/models"
)

// UserMembershipRepository, kullanıcı ↔ membership join tablosu işlemleri.
type UserMembershipRepository interface {
	// ListForUser, kullanıcının membership setini isme göre alfabetik döner.
	ListForUser(ctx context.Context, userID int64) ([]models.Membership, error)
	// ReplaceForUser, kullanıcının setini tek transaction içinde komple değiştirir:
	// mevcut satırlar silinir, verilen id'ler yazılır. Boş liste → set temizlenir.
	ReplaceForUser(ctx context.Context, userID int64, membershipIDs []int64) error
}
