package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/onerilhan/tasinmaz-panel/internal/utils"
)

// RateLimitConfig IP başına istek limiti ayarları
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
}

// DefaultRateLimitConfig varsayılan limitler
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerMinute: 120,
		Burst:             30,
		CleanupInterval:   10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter IP başına token bucket limiti uygular
type RateLimiter struct {
	config  *RateLimitConfig
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// NewRateLimiter yeni limiter oluşturur ve eski kayıtları arka planda temizler
func NewRateLimiter(config *RateLimitConfig) *RateLimiter {
	if config == nil {
		config = DefaultRateLimitConfig()
	}

	rl := &RateLimiter{
		config:  config,
		clients: map[string]*clientLimiter{},
	}

	go rl.cleanupLoop()
	return rl
}

// Middleware limit aşımında 429 döner
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := utils.GetClientIP(r)

		if !rl.limiterFor(clientIP).Allow() {
			log.Warn().
				Str("client_ip", clientIP).
				Str("path", r.URL.Path).
				Msg("Rate limit aşıldı")
			http.Error(w, "Çok fazla istek, lütfen bekleyin", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[clientIP]
	if !ok {
		limit := rate.Every(time.Minute / time.Duration(rl.config.RequestsPerMinute))
		client = &clientLimiter{limiter: rate.NewLimiter(limit, rl.config.Burst)}
		rl.clients[clientIP] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// cleanupLoop uzun süredir görülmeyen IP kayıtlarını siler
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-rl.config.CleanupInterval)
		rl.mu.Lock()
		for ip, client := range rl.clients {
			if client.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
