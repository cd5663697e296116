package models

import "time"

// Session, login ile oluşturulan sunucu taraflı oturumu temsil eder.
//
// Token opak bir uuid'dir — içinde claim taşımaz, anlamı DB satırıdır.
// Logout satırı siler: iptal edilen token bir daha asla geçerli olamaz.
type Session struct {
	ID        int64     `json:"id"`
	Token     string    `json:"-"` // Sadece login response'unda ayrıca döner
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
