// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ı burada tanımlıdır:
//   - auth: session token doğrulaması
package main

import (
	"net/http"

	"github.com/akinalp/perkmanager/middleware"
	"github.com/akinalp/perkmanager/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Okuma endpoint'leri herkese açıktır — katalog login olmadan gezilebilir.
// Yazma endpoint'leri (perk/membership oluşturma, oy, seçim güncelleme)
// geçerli oturum gerektirir.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)

	// ─── Middleware Chain Helper ───
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Auth
	mux.HandleFunc("POST /api/register", h.Auth.Register)
	mux.HandleFunc("POST /api/login", h.Auth.Login)
	mux.HandleFunc("POST /api/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/current-user", h.Auth.CurrentUser)

	// Perks — listeleme public, yazma oturum gerektirir
	mux.HandleFunc("GET /api/perks", h.Perk.List)
	mux.Handle("POST /api/perks", auth(h.Perk.Create))
	mux.Handle("POST /api/perks/{id}/upvote", auth(h.Perk.Upvote))
	mux.Handle("POST /api/perks/{id}/downvote", auth(h.Perk.Downvote))

	// Memberships — katalog public, ekleme oturum gerektirir
	mux.HandleFunc("GET /api/memberships", h.Membership.List)
	mux.Handle("POST /api/memberships", auth(h.Membership.Create))

	// User memberships — kullanıcının kendi seçim listesi
	mux.Handle("GET /api/user/memberships", auth(h.UserMembership.List))
	mux.Handle("PUT /api/user/memberships", auth(h.UserMembership.Replace))

	// WebSocket — token query parameter ile authenticate edilir
	//
	// Neden auth middleware kullanmıyoruz?
	// WebSocket upgrade sırasında tarayıcılar custom HTTP header gönderemez.
	// Session token URL query parameter olarak gönderilir:
	//   ws://server/ws?token=SESSION_TOKEN
	// WS handler kendi içinde token doğrulaması yapar.
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)
}
