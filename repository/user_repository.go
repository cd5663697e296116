// Package repository, veritabanı erişim katmanını tanımlar.
//
// Her aggregate için bir interface + bir SQLite implementasyonu vardır.
// Service katmanı doğrudan SQL yazmaz — interface üzerinden çalışır,
// testlerde in-memory fake'ler bu interface'lerin yerine geçer.
package repository

import (
	"context"

	"github.com/akinalp/perkmanager/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
// Memberships alanı burada DOLDURULMAZ — UserMembershipRepository.ListForUser
// ile service katmanında compose edilir.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}
