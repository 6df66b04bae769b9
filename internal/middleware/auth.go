package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// wantsJSON istemcinin Accept header'ına göre JSON yanıt bekleyip
// beklemediğini döner
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// denyJSON guard reddini JSON zarfıyla döner
func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// RequireLogin giriş zorunluluğu guard'ıdır. Kontrol senkrondur ve yalnızca
// lokal oturum durumunu okur; ağa çıkılmaz. Oturum yoksa tarayıcı istekleri
// login'e yönlendirilir, JSON bekleyen istemciler 401 alır.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromRequest(r)
		if !sess.IsLoggedIn() {
			log.Warn().
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("Oturumsuz erişim denemesi")
			if wantsJSON(r) {
				denyJSON(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor")
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		// Oturumu context'e ekle
		ctx := context.WithValue(r.Context(), SessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin admin zorunluluğu guard'ıdır; admin olmayan tarayıcı
// oturumları hata yerine ana sayfaya yönlendirilir, JSON bekleyen istemciler
// 403 alır. RequireLogin'den sonra kullanılır.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r)
		if !sess.IsAdmin() {
			log.Warn().
				Str("path", r.URL.Path).
				Str("user_id", sess.UserID()).
				Msg("Yetkisiz erişim denemesi")
			if wantsJSON(r) {
				denyJSON(w, http.StatusForbidden, "Bu işlem için admin yetkisi gerekiyor")
				return
			}
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
