package repository

import (
	"context"

	"github.com/akinalp/perkmanager/models"
)

// Store seviyesinde sıralanabilir perk kolonları.
// Service katmanının sort-key çözümlemesi bu sabitlere map'lenir —
// ORDER BY'a asla kullanıcı girdisi gitmez.
const (
	PerkSortID         = "p.id"
	PerkSortTitle      = "p.title"
	PerkSortProduct    = "p.product"
	PerkSortMembership = "m.name"
	PerkSortUpvotes    = "p.upvotes"
	PerkSortDownvotes  = "p.downvotes"
	PerkSortExpiry     = "p.expiry_date"
	PerkSortLocation   = "p.location"
)

// PerkSort, store seviyesinde uygulanacak sıralama planı.
// Column yukarıdaki sabitlerden biri olmalıdır.
type PerkSort struct {
	Column string
	Desc   bool
}

// PerkListOptions, perk listeleme parametreleri.
// Search boş ise filtre uygulanmaz. Sort nil ise store-default sıra döner
// (score sıralaması service katmanında in-memory yapılır).
type PerkListOptions struct {
	Search string
	Sort   *PerkSort
}

// PerkRepository, perk kataloğu işlemleri için interface.
type PerkRepository interface {
	// Create, yeni perk ekler ve perk.ID + perk.CreatedAt'i doldurur.
	// perk.Membership.ID dolu olmalıdır.
	Create(ctx context.Context, perk *models.Perk) error
	GetByID(ctx context.Context, id int64) (*models.Perk, error)
	List(ctx context.Context, opts PerkListOptions) ([]models.Perk, error)
	// IncrementVote, ilgili sayacı tek bir atomik UPDATE ile 1 artırır ve
	// votes aynasını yeniden yazar. Satır yoksa pkg.ErrNotFound döner.
	IncrementVote(ctx context.Context, id int64, kind models.VoteKind) error
	Count(ctx context.Context) (int, error)
}
