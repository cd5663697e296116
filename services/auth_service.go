// Package services, business logic katmanını barındırır.
//
// Service, handler (HTTP) ile repository (DB) arasında oturur: tüm iş
// kuralları burada yaşar. Service ASLA http.Request/Response bilmez ve
// ASLA doğrudan SQL çalıştırmaz — repository interface'leri kullanır.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/pkg/email"
	"github.com/akinalp/perkmanager/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService interface'i — dışarıya açık API.
// Handler ve middleware bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error)
	// Logout, verilen token'ın oturumunu koşulsuz siler.
	// Token bilinmiyorsa da başarılıdır — logout idempotent'tir.
	Logout(ctx context.Context, token string) error
	// CurrentUser, token'dan taze kullanıcı profili döner.
	// Session yok / süresi dolmuş / kullanıcı silinmiş → ErrUnauthorized.
	// Middleware ve ws handshake de bu metodu kullanır.
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// LoginResult, başarılı login sonrası dönen oturum bilgisi.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	umRepo      repository.UserMembershipRepository
	emailSender email.EmailSender // nil olabilir — email opsiyonel
	sessionExp  time.Duration
}

// NewAuthService, constructor.
// emailSender nil geçilirse hoş geldin emaili atlanır (lokal geliştirme).
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	umRepo repository.UserMembershipRepository,
	emailSender email.EmailSender,
	sessionExpiryHours int,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		umRepo:      umRepo,
		emailSender: emailSender,
		sessionExp:  time.Duration(sessionExpiryHours) * time.Hour,
	}
}

// Register, yeni kullanıcı kaydı oluşturur ve profili döner.
// Kayıt oturum AÇMAZ — kullanıcı ayrıca login olur.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	// Hoş geldin emaili best-effort — gidemezse kayıt yine başarılıdır.
	if s.emailSender != nil {
		go func(toEmail, username string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.emailSender.SendWelcome(ctx, toEmail, username); err != nil {
				log.Printf("[auth] welcome email failed for %s: %v", username, err)
			}
		}(user.Email, user.Username)
	}

	user.PasswordHash = ""
	user.Memberships = []models.Membership{}
	return user, nil
}

// Login, kullanıcı girişi yapar ve yeni bir oturum satırı oluşturur.
// Bilinmeyen kullanıcı ile yanlış şifre AYNI mesajı döner — hangi
// kısmın yanlış olduğu dışarı sızdırılmaz.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", pkg.ErrUnauthorized)
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionExp),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.attachMemberships(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""

	return &LoginResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      *user,
	}, nil
}

// Logout, oturumu siler. Session satırı gittiği anda token geçersizdir —
// aynı token ile sonraki her istek Unauthorized alır.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// CurrentUser, token'ı session satırına çözer ve kullanıcıyı DB'den
// taze okur. Süresi dolmuş session bulunduğu yerde silinir.
func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", pkg.ErrUnauthorized)
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid session", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		if delErr := s.sessionRepo.DeleteByID(ctx, session.ID); delErr != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", delErr)
		}
		return nil, fmt.Errorf("%w: session expired", pkg.ErrUnauthorized)
	}

	// Session geçerli ama kullanıcı silinmiş olabilir — taze oku.
	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := s.attachMemberships(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// attachMemberships, kullanıcının membership setini join tablosundan yükler.
func (s *authService) attachMemberships(ctx context.Context, user *models.User) error {
	memberships, err := s.umRepo.ListForUser(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Memberships = memberships
	return nil
}
