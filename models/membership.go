package models

import (
	"fmt"
	"strings"
	"time"
)

// Membership, bir kartı veya programı temsil eder (ör: Visa, Costco).
// Perk'ler bir membership'e bağlıdır; kullanıcılar sahip oldukları
// membership setini kendileri seçer.
type Membership struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMembershipRequest, yeni membership oluşturma isteği.
type CreateMembershipRequest struct {
	Name string `json:"name"`
}

// Validate, ismi trimler ve boş olmadığını kontrol eder.
// Benzersizlik kontrolü (case-insensitive) repository katmanında yapılır —
// unique index ihlali Conflict'e çevrilir.
func (r *CreateMembershipRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("membership name is required")
	}
	return nil
}
