package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/repository"
	"github.com/akinalp/perkmanager/ws"
)

// PerkService interface'i — perk kataloğu iş kuralları.
type PerkService interface {
	// List, arama + sıralama parametreleriyle perk listesi döner.
	List(ctx context.Context, query PerkQuery) ([]models.Perk, error)
	// Create, yeni perk oluşturur ve membership'i inline dolu döner.
	Create(ctx context.Context, req *models.CreatePerkRequest) (*models.Perk, error)
	// Upvote/Downvote, ilgili sayacı 1 artırır ve güncel perk'i döner.
	Upvote(ctx context.Context, id int64) (*models.Perk, error)
	Downvote(ctx context.Context, id int64) (*models.Perk, error)
}

// PerkQuery, GET /api/perks query parametreleri.
type PerkQuery struct {
	Search    string
	SortBy    string
	Direction string
}

// sortableFields, dışarıdan gelen sortBy anahtarlarını store kolonlarına map'ler.
// Anahtar karşılaştırması case-insensitive yapılır. "membership" için üç
// takma ad da membership adına göre sıralar. Bilinmeyen anahtar sıralamasız
// liste demektir — hata değildir.
var sortableFields = map[string]string{
	"id":              repository.PerkSortID,
	"title":           repository.PerkSortTitle,
	"product":         repository.PerkSortProduct,
	"membership":      repository.PerkSortMembership,
	"membership.name": repository.PerkSortMembership,
	"membershipname":  repository.PerkSortMembership,
	"upvotes":         repository.PerkSortUpvotes,
	"downvotes":       repository.PerkSortDownvotes,
	"expirydate":      repository.PerkSortExpiry,
	"location":        repository.PerkSortLocation,
}

// sortByScore, store'da kolonu olmayan tek sıralama anahtarı.
// Score türetilmiş bir değer olduğu için in-memory sıralanır.
const sortByScore = "score"

// perkService, PerkService interface'inin implementasyonu.
type perkService struct {
	perkRepo       repository.PerkRepository
	membershipRepo repository.MembershipRepository
	hub            ws.EventPublisher
}

// NewPerkService, constructor.
func NewPerkService(
	perkRepo repository.PerkRepository,
	membershipRepo repository.MembershipRepository,
	hub ws.EventPublisher,
) PerkService {
	return &perkService{
		perkRepo:       perkRepo,
		membershipRepo: membershipRepo,
		hub:            hub,
	}
}

// List, query çözümlemesini yapar ve store'dan okur.
//
// İki fazlı score sıralaması: score store'da kolon değildir, bu yüzden
// (filtrelenmiş) satırlar sırasız çekilir ve sort.SliceStable ile
// upvotes - downvotes değerine göre bellekte sıralanır.
func (s *perkService) List(ctx context.Context, query PerkQuery) ([]models.Perk, error) {
	sortKey := strings.ToLower(strings.TrimSpace(query.SortBy))
	desc := strings.EqualFold(strings.TrimSpace(query.Direction), "desc")

	opts := repository.PerkListOptions{
		Search: strings.TrimSpace(query.Search),
	}

	scoreSort := sortKey == sortByScore
	if !scoreSort {
		if column, ok := sortableFields[sortKey]; ok {
			opts.Sort = &repository.PerkSort{Column: column, Desc: desc}
		}
	}

	perks, err := s.perkRepo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	if scoreSort {
		sort.SliceStable(perks, func(i, j int) bool {
			if desc {
				return perks[i].Score > perks[j].Score
			}
			return perks[i].Score < perks[j].Score
		})
	}

	return perks, nil
}

// Create, perk oluşturma kurallarını uygular:
//   - client'ın gönderdiği id yoksayılır (insert yeni id atar)
//   - nil sayaçlar 0'a düşer
//   - expiry bugünden ÖNCE olamaz (bugün geçerli)
//   - membership referansı çözülebilir olmalıdır
func (s *perkService) Create(ctx context.Context, req *models.CreatePerkRequest) (*models.Perk, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if req.ExpiryDate != nil && req.ExpiryDate.Before(models.Today().Time) {
		return nil, fmt.Errorf("%w: expiry date cannot be in the past", pkg.ErrBadRequest)
	}

	membership, err := s.membershipRepo.GetByID(ctx, req.MembershipID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown membership %d", pkg.ErrBadRequest, req.MembershipID)
		}
		return nil, err
	}

	upvotes, downvotes := 0, 0
	if req.Upvotes != nil {
		upvotes = *req.Upvotes
	}
	if req.Downvotes != nil {
		downvotes = *req.Downvotes
	}

	perk := &models.Perk{
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Product:     strings.TrimSpace(req.Product),
		Membership: models.MembershipRef{
			ID:   membership.ID,
			Name: membership.Name,
		},
		Upvotes:    upvotes,
		Downvotes:  downvotes,
		ExpiryDate: req.ExpiryDate,
		Location:   req.Location,
	}

	if err := s.perkRepo.Create(ctx, perk); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{Op: ws.OpPerkCreate, Data: perk})

	return perk, nil
}

func (s *perkService) Upvote(ctx context.Context, id int64) (*models.Perk, error) {
	return s.vote(ctx, id, models.VoteUp)
}

func (s *perkService) Downvote(ctx context.Context, id int64) (*models.Perk, error) {
	return s.vote(ctx, id, models.VoteDown)
}

// vote, sayacı atomik olarak artırır ve güncel perk'i geri okur.
// Artırma ve geri okuma tek satırlık işlemlerdir; response'taki score
// her zaman güncel sayaçlardan hesaplanır.
func (s *perkService) vote(ctx context.Context, id int64, kind models.VoteKind) (*models.Perk, error) {
	if err := s.perkRepo.IncrementVote(ctx, id, kind); err != nil {
		return nil, err // ErrNotFound olabilir
	}

	perk, err := s.perkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{Op: ws.OpPerkVote, Data: perk})

	return perk, nil
}
