// Package models, uygulamanın domain modellerini tanımlar.
//
// Her struct DB'deki bir tablonun Go karşılığıdır ve aynı zamanda API'den
// gelen/giden verilerin şeklini belirler. json tag'leri serialize davranışını
// kontrol eder — `json:"-"` alanı response'tan tamamen çıkarır.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// emailRegex, kayıt sırasında email formatını kontrol eder.
// Kasıtlı olarak gevşek — gerçek doğrulama mail'in ulaşmasıdır.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User, bir kullanıcıyı temsil eder.
// Memberships, user_memberships join tablosundan yüklenir ve kullanıcının
// sahip olduğu kart/program setini taşır.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // API response'a ASLA dahil edilmez
	Memberships  []Membership `json:"memberships"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// RegisterRequest, kayıt olurken gelen veri.
// PasswordHash yerine Password alınır — hash'leme service katmanında yapılır.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Validate, kayıt isteğini kontrol eder:
//   - Username: 3-32 karakter, alfanumerik + alt çizgi
//   - Password: minimum 8 karakter
//   - Email: zorunlu, basit format kontrolü
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 32 {
		return fmt.Errorf("username must be between 3 and 32 characters")
	}

	for _, ch := range r.Username {
		if !isValidUsernameChar(ch) {
			return fmt.Errorf("username can only contain letters, numbers, and underscores")
		}
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// LoginRequest, giriş isteği.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate, login isteğini kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UpdateMembershipsRequest, kullanıcının membership setini komple değiştirme isteği.
// membershipIds nil gelirse boş set olarak yorumlanır (tümünü kaldır).
type UpdateMembershipsRequest struct {
	MembershipIDs []int64 `json:"membershipIds"`
}

// isValidUsernameChar, username'de izin verilen karakterleri kontrol eder.
func isValidUsernameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
