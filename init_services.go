// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"log"
	"time"

	"github.com/akinalp/perkmanager/config"
	"github.com/akinalp/perkmanager/pkg/email"
	"github.com/akinalp/perkmanager/pkg/ratelimit"
	"github.com/akinalp/perkmanager/services"
	"github.com/akinalp/perkmanager/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth           services.AuthService
	Perk           services.PerkService
	Membership     services.MembershipService
	UserMembership services.UserMembershipService
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login *ratelimit.LoginRateLimiter
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
// hub, service'ler arası paylaşılan broadcast dependency'sidir.
func initServices(repos *Repositories, hub ws.EventPublisher, cfg *config.Config) (*Services, *RateLimiters) {
	// ─── Email service (opsiyonel) ───
	var emailSender email.EmailSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.FromEmail != "" && cfg.Email.AppURL != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.AppURL)
		log.Printf("[main] email service enabled (from=%s)", cfg.Email.FromEmail)
	} else {
		log.Println("[main] email service disabled (RESEND_API_KEY, EMAIL_FROM or APP_URL not set)")
	}

	authService := services.NewAuthService(
		repos.User, repos.Session, repos.UserMembership,
		emailSender, cfg.Session.ExpiryHours,
	)

	perkService := services.NewPerkService(repos.Perk, repos.Membership, hub)
	membershipService := services.NewMembershipService(repos.Membership, hub)
	userMembershipService := services.NewUserMembershipService(repos.User, repos.Membership, repos.UserMembership)

	// ─── Rate Limiters ───
	loginLimiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)

	svcs := &Services{
		Auth:           authService,
		Perk:           perkService,
		Membership:     membershipService,
		UserMembership: userMembershipService,
	}

	limiters := &RateLimiters{
		Login: loginLimiter,
	}

	return svcs, limiters
}
