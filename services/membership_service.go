package services

import (
	"context"
	"fmt"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/repository"
	"github.com/akinalp/perkmanager/ws"
)

// MembershipService interface'i — membership kataloğu iş kuralları.
type MembershipService interface {
	// List, tüm membership'leri isme göre alfabetik döner.
	List(ctx context.Context) ([]models.Membership, error)
	// Create, yeni membership ekler. İsim trimlenmiş ve boş olmamalıdır;
	// case-insensitive isim çakışması ErrAlreadyExists döner.
	Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.Membership, error)
}

// membershipService, MembershipService interface'inin implementasyonu.
type membershipService struct {
	membershipRepo repository.MembershipRepository
	hub            ws.EventPublisher
}

// NewMembershipService, constructor.
func NewMembershipService(membershipRepo repository.MembershipRepository, hub ws.EventPublisher) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		hub:            hub,
	}
}

func (s *membershipService) List(ctx context.Context) ([]models.Membership, error) {
	return s.membershipRepo.GetAll(ctx)
}

func (s *membershipService) Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.Membership, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	membership := &models.Membership{Name: req.Name}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	s.hub.BroadcastToAll(ws.Event{Op: ws.OpMembershipCreate, Data: membership})

	return membership, nil
}
