package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// Recovery panic'leri yakalar ve JSON 500 döner. Merkezi bir hata sınırı
// yoktur; her handler kendi başarı/başarısızlık dallarını işler, burası
// yalnızca son çare.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Interface("panic", recovered).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("stack", string(debug.Stack())).
					Msg("Panic yakalandı")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   "Beklenmeyen bir hata oluştu",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
