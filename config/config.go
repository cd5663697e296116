// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Go'da "struct" bir veri yapısıdır — birden fazla field'ı bir arada tutar.
// Config struct'ı tüm ayarları tek bir yerde toplar, böylece
// her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — Single Responsibility: her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Email    EmailConfig
	CORS     CORSConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/perkmanager.db)
}

// SessionConfig, oturum token ayarları.
type SessionConfig struct {
	ExpiryHours int // Saat cinsinden (varsayılan: 168 = 7 gün)
}

// EmailConfig, Resend üzerinden e-posta gönderimi ayarları.
// APIKey boşsa e-posta gönderimi devre dışı kalır.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	AppURL       string
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
//
// Go'da error handling: Go'da exception/try-catch yoktur.
// Fonksiyonlar hata durumunda (value, error) tuple'ı döner.
// Çağıran taraf her zaman error'ı kontrol ETMEK ZORUNDADIR.
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	sessionExpiry, err := strconv.Atoi(getEnv("SESSION_EXPIRY_HOURS", "168"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_EXPIRY_HOURS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/perkmanager.db"),
		},
		Session: SessionConfig{
			ExpiryHours: sessionExpiry,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("EMAIL_FROM", "Perk Manager <noreply@perkmanager.local>"),
			AppURL:       getEnv("APP_URL", "http://localhost:9090"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitOrigins, virgülle ayrılmış origin listesini parse eder.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
