package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON başarılı yanıtı standart zarf içinde döner
func writeJSON(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// writeError hata yanıtı döner; mesaj kullanıcıya gösterilebilir olmalıdır
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
