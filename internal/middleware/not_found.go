package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/utils"
)

// NotFoundJSONHandler JSON formatında 404 Not Found döner
func NotFoundJSONHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   false,
			"error":     "Endpoint bulunamadı",
			"code":      http.StatusNotFound,
			"timestamp": time.Now().Format(time.RFC3339),
			"path":      r.URL.Path,
		})

		log.Warn().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("client_ip", utils.GetClientIP(r)).
			Msg("404 Not Found")
	}
}

// MethodNotAllowedJSONHandler JSON formatında 405 döner
func MethodNotAllowedJSONHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   false,
			"error":     "HTTP metodu bu endpoint için desteklenmiyor",
			"code":      http.StatusMethodNotAllowed,
			"timestamp": time.Now().Format(time.RFC3339),
			"path":      r.URL.Path,
		})

		log.Warn().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("client_ip", utils.GetClientIP(r)).
			Msg("405 Method Not Allowed")
	}
}
