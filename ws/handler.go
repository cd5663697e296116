package ws

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/akinalp/perkmanager/models"
)

// SessionValidator, WebSocket handler'ın oturum doğrulaması için kullandığı interface.
//
// services.AuthService yerine kendi interface'imizi tanımlıyoruz:
// services paketi ws.EventPublisher'ı kullanıyor — ws, services'i import
// etseydi döngü oluşurdu. Ayrıca handler'ın AuthService'in tamamına değil
// sadece CurrentUser'a ihtiyacı var (Interface Segregation).
// Wire-up'ta authService bu interface'i implicit olarak karşılar.
type SessionValidator interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// upgrader, HTTP bağlantısını WebSocket bağlantısına yükseltir.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CheckOrigin: Production'da domain kontrolü yapılmalı.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler, WebSocket bağlantı isteklerini işleyen HTTP handler'ı.
type Handler struct {
	hub       *Hub
	validator SessionValidator
}

// NewHandler, yeni bir WebSocket handler oluşturur.
func NewHandler(hub *Hub, validator SessionValidator) *Handler {
	return &Handler{
		hub:       hub,
		validator: validator,
	}
}

// HandleConnection, HTTP bağlantısını WebSocket'e yükseltir ve client'ı Hub'a kaydeder.
//
// WebSocket upgrade sırasında tarayıcılar custom HTTP header gönderemez —
// session token URL query parameter'ı olarak gelir:
//
//	ws://server/ws?token=SESSION_TOKEN
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	user, err := h.validator.CurrentUser(r.Context(), token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for user %d: %v", user.ID, err)
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		userID: user.ID,
		send:   make(chan []byte, sendBufferSize),
	}

	h.hub.register <- client

	// WritePump ayrı goroutine'de; ReadPump bu goroutine'de çalışır —
	// bağlantı kapanana kadar bloklar, handler erken dönmez.
	go client.WritePump()
	client.ReadPump()
}
