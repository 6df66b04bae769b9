package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/pbkdf2"

	"github.com/onerilhan/tasinmaz-panel/internal/audit"
	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// Kullanıcı listesi sayfa boyutu
const UserPageSize = 7

// İstemci tarafı şifre türetme parametreleri. Backend kimlik deposunun asıl
// sahibidir; hash+salt'ın düz metin şifreyle birlikte gönderilmesi mevcut
// backend sözleşmesidir.
const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 32
	saltLength       = 16
)

// UserService kullanıcı yönetimi akışlarını yönetir (yalnızca admin erişir)
type UserService struct {
	gateway interfaces.UserGatewayInterface
	audit   interfaces.AuditRecorderInterface
}

// NewUserService yeni servis oluşturur
func NewUserService(gateway interfaces.UserGatewayInterface, audit interfaces.AuditRecorderInterface) *UserService {
	return &UserService{gateway: gateway, audit: audit}
}

// List tüm kullanıcıları getirir, id'ye göre artan sıralar
func (s *UserService) List(ctx context.Context, sess *session.Store) ([]models.User, error) {
	users, err := s.gateway.All(ctx, sess.Token())
	if err != nil {
		return nil, fmt.Errorf("kullanıcılar yüklenemedi: %w", err)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// UserSearchFields arama filtresinin baktığı alanları döner
func UserSearchFields(u models.User) []string {
	return []string{
		fmt.Sprintf("%d", u.ID),
		u.Name,
		u.Surname,
		u.Email,
	}
}

// Create formu doğrular, istemci tarafı hash+salt türetir ve kaydı oluşturur.
// Rol gönderilmeden önce küçük harfe çevrilir; denetim açıklaması hassas
// alanlardan arındırılır.
func (s *UserService) Create(ctx context.Context, sess *session.Store, req *models.CreateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, salt, err := deriveCredentials(req.Password)
	if err != nil {
		return fmt.Errorf("şifre türetilemedi: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Password:     req.Password,
		PasswordHash: hash,
		PasswordSalt: salt,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         strings.ToLower(req.Role),
	}

	actorID := actorIDOf(sess)

	if err := s.gateway.Create(ctx, sess.Token(), user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Kullanıcı kaydedilirken hata oluştu")
		s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarisiz, models.IslemKullaniciEkleme,
			fmt.Sprintf("Kullanıcı eklenirken hata oluştu. Email: %s. Hata: %s", req.Email, err.Error()))
		return fmt.Errorf("kullanıcı eklenirken bir hata oluştu")
	}

	s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarili, models.IslemKullaniciEkleme,
		fmt.Sprintf("Yeni kullanıcı başarıyla eklendi. Email: %s", req.Email))

	log.Info().Str("email", req.Email).Str("role", user.Role).Msg("Yeni kullanıcı kaydedildi")
	return nil
}

// Update mevcut kullanıcıyı günceller
func (s *UserService) Update(ctx context.Context, sess *session.Store, id int, req *models.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user := &models.User{
		ID:      id,
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    strings.ToLower(req.Role),
	}

	actorID := actorIDOf(sess)

	if err := s.gateway.Update(ctx, sess.Token(), id, user); err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("Kullanıcı güncellenemedi")
		s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarisiz, models.IslemKullaniciDuzenleme,
			fmt.Sprintf("Kullanıcı güncellenirken hata oluştu: %s. Hata: %s", audit.DescribeUser(*user), err.Error()))
		return fmt.Errorf("kullanıcı güncellenirken bir hata oluştu")
	}

	s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarili, models.IslemKullaniciDuzenleme,
		fmt.Sprintf("Kullanıcı güncellendi: %s", audit.DescribeUser(*user)))

	log.Info().Int("user_id", id).Msg("Kullanıcı güncellendi")
	return nil
}

// BulkDelete seçili kullanıcıları sırayla siler; taşınmaz silmeyle aynı
// sözleşme: hata kalanları durdurmaz, liste tek sefer tazelenir.
func (s *UserService) BulkDelete(ctx context.Context, sess *session.Store, users []models.User) ([]models.User, []int) {
	actorID := actorIDOf(sess)
	var failed []int

	for _, user := range users {
		if err := s.gateway.Delete(ctx, sess.Token(), user.ID); err != nil {
			log.Error().Err(err).Int("user_id", user.ID).Msg("Kullanıcı silinirken hata oluştu")
			failed = append(failed, user.ID)
			s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarisiz, models.IslemKullaniciSilme,
				fmt.Sprintf("Kullanıcı silinirken hata oluştu: %s. Hata: %s", audit.DescribeUser(user), err.Error()))
			continue
		}
		s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarili, models.IslemKullaniciSilme,
			fmt.Sprintf("Kullanıcı silindi: %s", audit.DescribeUser(user)))
	}

	refreshed, err := s.List(ctx, sess)
	if err != nil {
		log.Error().Err(err).Msg("Silme sonrası kullanıcı listesi tazelenemedi")
		return nil, failed
	}
	return refreshed, failed
}

// deriveCredentials düz metin şifreden PBKDF2 hash'i ve rastgele salt üretir,
// ikisi de hex string döner
func deriveCredentials(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, saltLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("salt üretilemedi: %w", err)
	}

	key := pbkdf2.Key([]byte(password), saltBytes, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(key), hex.EncodeToString(saltBytes), nil
}
