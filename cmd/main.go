package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/audit"
	"github.com/onerilhan/tasinmaz-panel/internal/config"
	"github.com/onerilhan/tasinmaz-panel/internal/gateway"
	"github.com/onerilhan/tasinmaz-panel/internal/handlers"
	"github.com/onerilhan/tasinmaz-panel/internal/logger"
	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
)

func main() {
	// .env dosyasını yükle
	if err := godotenv.Load(); err != nil {
		stdlog.Println(".env dosyası bulunamadı, ortam değişkenlerinden okunacak.")
	}

	// config yükle
	cfg := config.LoadConfig()

	// logger başlat
	logger.Init(cfg.AppEnv)

	log.Info().
		Str("environment", cfg.AppEnv).
		Str("port", cfg.Port).
		Str("backend", cfg.BackendURL).
		Msg("🚀 Taşınmaz Panel başlatıldı")

	// Backend API istemcisi ve gateway katmanı
	client := gateway.NewClient(cfg.BackendURL)
	authGateway := gateway.NewAuthGateway(client)
	addressGateway := gateway.NewAddressGateway(client)
	tasinmazGateway := gateway.NewTasinmazGateway(client)
	userGateway := gateway.NewUserGateway(client)
	logGateway := gateway.NewLogGateway(client)

	// Denetim kayıtları fire-and-forget gider; shutdown'da beklenir
	auditRecorder := audit.NewRecorder(logGateway)

	// Service ve handler katmanları
	authService := services.NewAuthService(authGateway, auditRecorder)
	tasinmazService := services.NewTasinmazService(tasinmazGateway, auditRecorder)
	userService := services.NewUserService(userGateway, auditRecorder)
	logService := services.NewLogService(logGateway)

	authHandler := handlers.NewAuthHandler(authService)
	tasinmazHandler := handlers.NewTasinmazHandler(tasinmazService)
	userHandler := handlers.NewUserHandler(userService)
	logHandler := handlers.NewLogHandler(logService)
	addressHandler := handlers.NewAddressHandler(addressGateway)
	mapHandler := handlers.NewMapHandler(tasinmazService)

	// Gorilla Mux Router Setup
	router := setupRouter(cfg, authHandler, tasinmazHandler, userHandler, logHandler, addressHandler, mapHandler)

	// HTTP Server configuration
	serverAddr := ":" + cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown setup
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Server'ı goroutine'de başlat
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("addr", serverAddr).
			Int("read_timeout", 15).
			Int("write_timeout", 15).
			Int("idle_timeout", 60).
			Msg("🌐 HTTP Server (Gorilla Mux) başlatıldı")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("❌ Server başlatma hatası")
		}
	}()

	// Shutdown signal'ını bekle
	<-shutdown
	log.Info().Msg("🛑 Shutdown signal alındı, server kapatılıyor...")

	// Graceful shutdown sequence
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// 1. HTTP Server'ı kapat (aktif bağlantıları bekle)
	log.Info().Msg("📡 HTTP Server kapatılıyor...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ HTTP Server kapatma hatası")
	} else {
		log.Info().Msg("✅ HTTP Server başarıyla kapatıldı")
	}

	// 2. Havada kalan denetim kayıtlarını bekle
	log.Info().Msg("📝 Bekleyen denetim kayıtları tamamlanıyor...")
	auditRecorder.Wait(shutdownCtx)
	log.Info().Msg("✅ Denetim kayıtları tamamlandı")

	log.Info().Msg("👋 Taşınmaz Panel başarıyla kapatıldı")
}

// setupRouter Gorilla Mux router'ını ayarlar
func setupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	tasinmazHandler *handlers.TasinmazHandler,
	userHandler *handlers.UserHandler,
	logHandler *handlers.LogHandler,
	addressHandler *handlers.AddressHandler,
	mapHandler *handlers.MapHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Global middleware zinciri
	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig())
	router.Use(middleware.Recovery)
	router.Use(middleware.RequestLogging)
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders)
	router.Use(rateLimiter.Middleware)

	router.NotFoundHandler = middleware.NotFoundJSONHandler()
	router.MethodNotAllowedHandler = middleware.MethodNotAllowedJSONHandler()

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API subrouter
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints (Authentication)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")

	// Protected endpoints (giriş yapmış kullanıcı)
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.RequireLogin)

	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// Taşınmaz endpoints
	tasinmazlar := protected.PathPrefix("/tasinmazlar").Subrouter()
	tasinmazlar.HandleFunc("", tasinmazHandler.List).Methods("GET")
	tasinmazlar.HandleFunc("", tasinmazHandler.Create).Methods("POST")
	tasinmazlar.HandleFunc("/export", tasinmazHandler.Export).Methods("POST")
	tasinmazlar.HandleFunc("/bulk-delete", tasinmazHandler.BulkDelete).Methods("POST")
	tasinmazlar.HandleFunc("/{id:[0-9]+}", tasinmazHandler.Update).Methods("PUT")

	// Adres dropdown endpoints (il → ilçe → mahalle)
	address := protected.PathPrefix("/address").Subrouter()
	address.HandleFunc("/cities", addressHandler.Cities).Methods("GET")
	address.HandleFunc("/cities/{cityId:[0-9]+}/districts", addressHandler.Districts).Methods("GET")
	address.HandleFunc("/cities/{cityId:[0-9]+}/districts/{districtId:[0-9]+}/neighborhoods", addressHandler.Neighborhoods).Methods("GET")

	// Harita endpoints
	maps := protected.PathPrefix("/map").Subrouter()
	maps.HandleFunc("/pick", mapHandler.Pick).Methods("POST")
	maps.HandleFunc("/markers", mapHandler.Markers).Methods("GET")
	maps.HandleFunc("/draw", mapHandler.Draw).Methods("POST")

	// Admin endpoints (kullanıcı yönetimi + denetim logları)
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin)

	users := admin.PathPrefix("/users").Subrouter()
	users.HandleFunc("", userHandler.List).Methods("GET")
	users.HandleFunc("", userHandler.Create).Methods("POST")
	users.HandleFunc("/bulk-delete", userHandler.BulkDelete).Methods("POST")
	users.HandleFunc("/{id:[0-9]+}", userHandler.Update).Methods("PUT")

	logs := admin.PathPrefix("/logs").Subrouter()
	logs.HandleFunc("", logHandler.List).Methods("GET")
	logs.HandleFunc("/export", logHandler.Export).Methods("GET")
	logs.HandleFunc("/{id:[0-9]+}", logHandler.Detail).Methods("GET")

	// Route listesini log'la (development için)
	router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err == nil {
			methods, _ := route.GetMethods()
			log.Debug().
				Str("path", pathTemplate).
				Strs("methods", methods).
				Msg("📍 Route registered")
		}
		return nil
	})

	return router
}
