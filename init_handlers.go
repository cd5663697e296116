// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/perkmanager/handlers"
	"github.com/akinalp/perkmanager/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth           *handlers.AuthHandler
	Perk           *handlers.PerkHandler
	Membership     *handlers.MembershipHandler
	UserMembership *handlers.UserMembershipHandler
	WS             *ws.Handler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiters *RateLimiters, hub *ws.Hub) *Handlers {
	return &Handlers{
		Auth:           handlers.NewAuthHandler(svcs.Auth, limiters.Login),
		Perk:           handlers.NewPerkHandler(svcs.Perk),
		Membership:     handlers.NewMembershipHandler(svcs.Membership),
		UserMembership: handlers.NewUserMembershipHandler(svcs.UserMembership),
		WS:             ws.NewHandler(hub, svcs.Auth),
	}
}
