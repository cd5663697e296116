// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler "ince" (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/pkg/ratelimit"
	"github.com/akinalp/perkmanager/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
}

// NewAuthHandler, constructor.
// loginLimiter: Login brute-force koruması. nil ise rate limiting devre dışı kalır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// Register godoc
// POST /api/register
// Profil döner — oturum açmaz, kullanıcı ayrıca login olur.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, user)
}

// Login godoc
// POST /api/login
//
// Rate limiting: IP bazlı brute-force koruması.
// Limit aşıldığında 429 + Retry-After döner; başarılı login sayacı sıfırlar.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many login attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// Başarılı login — meşru kullanıcı sonraki oturumlarında bloke olmasın.
	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	pkg.JSON(w, http.StatusOK, result)
}

// Logout godoc
// POST /api/logout
// Authorization header'ındaki oturumu siler. Token eksik veya bilinmiyorsa
// da 200 döner — logout idempotent'tir.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := BearerToken(r)

	if err := h.authService.Logout(r.Context(), token); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// CurrentUser godoc
// GET /api/current-user
// Middleware gerektirmez — token'ı kendisi çözer, oturum yoksa 401 döner.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CurrentUser(r.Context(), BearerToken(r))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// BearerToken, Authorization header'ından token'ı çıkarır.
// Header yoksa veya format farklıysa boş string döner.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// UserContextKey, context'te kullanıcı bilgisi taşımak için kullanılan key tipi.
// String key yerine özel tip — namespace collision'ı önler.
type contextKey string

const UserContextKey contextKey = "user"
