package session

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// AdminRole token'daki role claim'i ile büyük/küçük harf duyarlı karşılaştırılır
const AdminRole = "admin"

// Claims backend'in ürettiği JWT payload'ını temsil eder (.NET claim adları)
type Claims struct {
	NameID string `json:"nameid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Store tek bir oturumun durumunu tutar: bearer token ve token'dan türetilen
// kullanıcı kimliği. Uygulama kökü tarafından sahiplenilir, görünümlere
// referansla geçilir; global durum yoktur.
type Store struct {
	mu     sync.RWMutex
	token  string
	userID string
}

// NewStore boş (çıkış yapılmış) bir oturum döner
func NewStore() *Store {
	return &Store{}
}

// SetToken token'ı saklar ve subject id'yi token'dan türetip yazar.
// Decode edilemeyen token saklanmaz; oturum değişmeden kalır.
func (s *Store) SetToken(token string) {
	claims := decodeClaims(token)
	if claims == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = claims.NameID
}

// Clear oturum verisini siler
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
}

// Token saklanan bearer token'ı döner, yoksa boş string
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn token varlığına eşdeğerdir
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin decode edilen role claim'i tam olarak "admin" ise true döner.
// Token yoksa veya decode edilemiyorsa false: hata her zaman çıkış yapılmış
// duruma düşer, asla yetkili duruma değil.
func (s *Store) IsAdmin() bool {
	claims := s.claims()
	return claims != nil && claims.Role == AdminRole
}

// UserID decode edilen subject claim'ini döner, yoksa boş string
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Email decode edilen email claim'ini döner, yoksa boş string
func (s *Store) Email() string {
	claims := s.claims()
	if claims == nil {
		return ""
	}
	return claims.Email
}

// Role decode edilen role claim'ini döner, yoksa "bilinmiyor"
func (s *Store) Role() string {
	claims := s.claims()
	if claims == nil || claims.Role == "" {
		return "bilinmiyor"
	}
	return claims.Role
}

func (s *Store) claims() *Claims {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return nil
	}
	return decodeClaims(token)
}

// decodeClaims token payload'ını imza doğrulamadan çözer. İmzanın doğrulayıcısı
// backend'dir; panel yalnızca claim okur. Hatalı token nil döner ve sadece
// debug loglanır.
func decodeClaims(tokenString string) *Claims {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		log.Debug().Err(err).Msg("Token decode hatası")
		return nil
	}
	return claims
}
