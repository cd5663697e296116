package services

import (
	"context"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/repository"
)

// UserMembershipService interface'i — kullanıcının membership setinin yönetimi.
type UserMembershipService interface {
	// ListForUser, kullanıcının güncel membership setini döner.
	ListForUser(ctx context.Context, userID int64) ([]models.Membership, error)
	// Replace, kullanıcının setini komple değiştirir ve güncel profili döner.
	//
	// Davranış:
	//   - kullanıcı store'dan yeniden okunur (silinmişse ErrNotFound)
	//   - bilinmeyen membership id'leri SESSİZCE atlanır — hata değildir
	//   - kalan id'ler tek transaction içinde setin tamamının yerine yazılır
	//   - nil/boş liste seti temizler
	Replace(ctx context.Context, userID int64, membershipIDs []int64) (*models.User, error)
}

// userMembershipService, UserMembershipService interface'inin implementasyonu.
type userMembershipService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	umRepo         repository.UserMembershipRepository
}

// NewUserMembershipService, constructor.
func NewUserMembershipService(
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	umRepo repository.UserMembershipRepository,
) UserMembershipService {
	return &userMembershipService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		umRepo:         umRepo,
	}
}

func (s *userMembershipService) ListForUser(ctx context.Context, userID int64) ([]models.Membership, error) {
	return s.umRepo.ListForUser(ctx, userID)
}

func (s *userMembershipService) Replace(ctx context.Context, userID int64, membershipIDs []int64) (*models.User, error) {
	// Session geçerli olsa da kullanıcı bu arada silinmiş olabilir — taze oku.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err // ErrNotFound olabilir
	}

	// Çözülebilen id'ler — GetByIDs bilinmeyenleri zaten atlar.
	resolved, err := s.membershipRepo.GetByIDs(ctx, membershipIDs)
	if err != nil {
		return nil, err
	}

	resolvedIDs := make([]int64, len(resolved))
	for i, m := range resolved {
		resolvedIDs[i] = m.ID
	}

	if err := s.umRepo.ReplaceForUser(ctx, user.ID, resolvedIDs); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.Memberships = resolved
	return user, nil
}
