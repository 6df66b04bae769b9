package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// AuthHandler giriş/çıkış endpoint'lerini yönetir
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler yeni handler oluşturur
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login kullanıcı giriş endpoint'i; başarıda oturum cookie'lerini yazar
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Login validation hatası")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		// Başarısız giriş oturum durumunu değiştirmez; cookie yazılmaz
		writeError(w, http.StatusUnauthorized, "Giriş başarısız. Lütfen e-posta ve şifrenizi kontrol edin.")
		return
	}

	sess.Write(w)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId": sess.UserID(),
		"role":   sess.Role(),
	}, "Başarıyla giriş yaptınız!")
}

// Logout oturumu kapatır ve cookie'leri temizler
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)
	h.authService.Logout(sess)
	session.ClearCookies(w)

	writeJSON(w, http.StatusOK, nil, "Çıkış işlemi başarıyla gerçekleştirildi.")
}

// Register yeni kullanıcı kaydını backend'e iletir
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	if err := h.authService.Register(r.Context(), sess.Token(), &user); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("Kayıt başarısız")
		writeError(w, http.StatusBadRequest, "Kayıt sırasında bir hata oluştu")
		return
	}

	writeJSON(w, http.StatusCreated, nil, "Kayıt başarılı")
}
