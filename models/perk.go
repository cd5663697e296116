package models

import (
	"fmt"
	"strings"
	"time"
)

// Perk, bir membership'e bağlı indirim/avantaj kaydını temsil eder.
//
// Upvotes/Downvotes DB'de nullable'dır — okuma tarafı NULL'ı 0 sayar.
// Score her response'ta upvotes - downvotes olarak yeniden hesaplanır;
// DB'deki votes kolonu sadece yazılan bir aynadır, asla geri okunmaz.
type Perk struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Product     string        `json:"product"`
	Membership  MembershipRef `json:"membership"`
	Upvotes     int           `json:"upvotes"`
	Downvotes   int           `json:"downvotes"`
	Score       int           `json:"score"`
	ExpiryDate  *Date         `json:"expiryDate"`
	Location    *string       `json:"location"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// MembershipRef, perk response'larında inline taşınan membership özeti.
type MembershipRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VoteKind, bir oyun yönü.
type VoteKind string

const (
	VoteUp   VoteKind = "up"
	VoteDown VoteKind = "down"
)

// CreatePerkRequest, yeni perk oluşturma isteği.
//
// Client'ın gönderdiği id her zaman yoksayılır — insert yeni id atar.
// Upvotes/Downvotes pointer'dır: gönderilmediyse 0 varsayılır.
type CreatePerkRequest struct {
	ID           *int64  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Product      string  `json:"product"`
	MembershipID int64   `json:"membershipId"`
	Upvotes      *int    `json:"upvotes"`
	Downvotes    *int    `json:"downvotes"`
	ExpiryDate   *Date   `json:"expiryDate"`
	Location     *string `json:"location"`
}

// Validate, alan bazlı kontrolleri yapar.
// Membership'in var olup olmadığı ve expiry'nin geçmişte olmaması
// service katmanında kontrol edilir (DB ve "bugün" bilgisi gerekir).
func (r *CreatePerkRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.MembershipID <= 0 {
		return fmt.Errorf("membershipId is required")
	}
	if r.Upvotes != nil && *r.Upvotes < 0 {
		return fmt.Errorf("upvotes cannot be negative")
	}
	if r.Downvotes != nil && *r.Downvotes < 0 {
		return fmt.Errorf("downvotes cannot be negative")
	}
	return nil
}
