// Package main, perkmanager backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//   1. Config'i yükle
//   2. Database'i başlat (embedded migration'lar ile)
//   3. Repository'leri oluştur (DB bağlantısı ile)
//   4. WebSocket Hub'ı başlat
//   5. Süresi dolmuş oturumları temizle
//   6. Seed verisini yükle (DB boşsa)
//   7. Service'leri oluştur (repository'ler + hub ile)
//   8. Handler'ları oluştur (service'ler ile)
//   9. HTTP router'ı kur, route'ları bağla
//  10. CORS yapılandır
//  11. HTTP Server'ı başlat
//  12. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/akinalp/perkmanager/config"
	"github.com/akinalp/perkmanager/database"
	"github.com/akinalp/perkmanager/seed"
	"github.com/akinalp/perkmanager/ws"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] perkmanager server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	// Migration'lar binary'ye gömülüdür — çalışma dizininden bağımsız.
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	repos := initRepositories(db.Conn)

	// ─── 4. WebSocket Hub ───
	//
	// Hub, tüm WebSocket bağlantılarını yöneten merkezi yapıdır.
	// `go hub.Run()` ayrı bir goroutine'de event loop başlatır:
	// register/unregister channel'larını dinler ve client map'ini günceller.
	// Hub aynı zamanda EventPublisher interface'ini implement eder —
	// service'ler hub'a doğrudan bağımlı olmak yerine interface üzerinden erişir.
	hub := ws.NewHub()
	go hub.Run()

	// ─── 5. Oturum temizliği ───
	// Açılışta süresi dolmuş oturumlar silinir — tablo şişmesin.
	if err := repos.Session.DeleteExpired(context.Background()); err != nil {
		log.Printf("[main] failed to clean expired sessions: %v", err)
	}

	// ─── 6. Seed ───
	if err := seed.Run(context.Background(), repos.User, repos.Membership, repos.UserMembership, repos.Perk); err != nil {
		log.Fatalf("[main] failed to seed database: %v", err)
	}

	// ─── 7. Service Layer ───
	svcs, limiters := initServices(repos, hub, cfg)

	// ─── 8. Handler Layer ───
	h := initHandlers(svcs, limiters, hub)

	// ─── 9. HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"perkmanager"}`)
	})

	initRoutes(mux, h, svcs.Auth)

	// ─── 10. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	})

	handler := corsHandler.Handler(mux)

	// ─── 11. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 12. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Önce WebSocket bağlantılarını kapat — client'lar "server shutting down" bilir.
	// Sonra HTTP server'ı kapat — yeni request kabul etmeyi durdurur,
	// mevcut request'lerin bitmesini bekler (5sn timeout).
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
