package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// AuthService giriş/çıkış akışını yönetir
type AuthService struct {
	gateway interfaces.AuthGatewayInterface
	audit   interfaces.AuditRecorderInterface
}

// NewAuthService yeni servis oluşturur
func NewAuthService(gateway interfaces.AuthGatewayInterface, audit interfaces.AuditRecorderInterface) *AuthService {
	return &AuthService{gateway: gateway, audit: audit}
}

// Login kimlik bilgilerini backend'e iletir. Başarıda token'lı yeni oturum
// döner ve giriş loglanır; başarısızlıkta oturum durumu değişmez, generic
// hata döner ve başarısız deneme loglanır.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*session.Store, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := s.gateway.Login(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Giriş başarısız")
		s.audit.Record("", 0, "", models.DurumBasarisiz, models.IslemLogin,
			fmt.Sprintf("%s email'li kullanıcı sisteme giriş yapmaya çalıştı ancak token almayı başaramadı", req.Email))
		return nil, fmt.Errorf("giriş başarısız, email ve şifrenizi kontrol edin")
	}

	store := session.NewStore()
	store.SetToken(token)
	if !store.IsLoggedIn() {
		// Backend token döndü ama decode edilemedi; oturum açılmış sayılmaz
		log.Error().Str("email", req.Email).Msg("Token decode edilemedi, oturum açılmadı")
		s.audit.Record("", 0, "", models.DurumBasarisiz, models.IslemLogin,
			fmt.Sprintf("%s email'li kullanıcının token'ı çözümlenemedi", req.Email))
		return nil, fmt.Errorf("giriş başarısız, email ve şifrenizi kontrol edin")
	}

	actorID := actorIDOf(store)
	s.audit.Record(store.Token(), actorID, store.Role(), models.DurumBasarili, models.IslemLogin,
		fmt.Sprintf("%s email'li kullanıcı sisteme giriş yaptı", req.Email))

	log.Info().Str("email", req.Email).Str("role", store.Role()).Msg("Kullanıcı giriş yaptı")
	return store, nil
}

// Logout oturumu kapatır. Aktör bilgisi temizlemeden ÖNCE yakalanır ve
// çıkış best-effort loglanır.
func (s *AuthService) Logout(sess *session.Store) {
	token := sess.Token()
	userID := sess.UserID()
	email := sess.Email()
	role := sess.Role()
	actorID := actorIDOf(sess)

	sess.Clear()

	if userID != "" {
		s.audit.Record(token, actorID, role, models.DurumBasarili, models.IslemLogout,
			fmt.Sprintf("Kullanıcı %s (%s, %s) çıkış yaptı.", userID, email, role))
	}

	log.Info().Str("user_id", userID).Msg("Kullanıcı çıkış yaptı")
}

// Register kayıt isteğini backend'e iletir (passthrough)
func (s *AuthService) Register(ctx context.Context, token string, user *models.User) error {
	return s.gateway.Register(ctx, token, user)
}

// actorIDOf oturumdaki subject claim'ini sayıya çevirir, çözülemezse 0
func actorIDOf(sess *session.Store) int {
	id, err := strconv.Atoi(sess.UserID())
	if err != nil {
		return 0
	}
	return id
}
