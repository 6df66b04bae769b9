package middleware

import (
	"net/http"

	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// ContextKey middleware'de context için key tipi
type ContextKey string

// SessionContextKey guard'ların context'e koyduğu oturum
const SessionContextKey ContextKey = "session"

// SessionFrom istekteki oturumu döner; guard'dan geçmemiş isteklerde boş
// oturum döner
func SessionFrom(r *http.Request) *session.Store {
	if sess, ok := r.Context().Value(SessionContextKey).(*session.Store); ok {
		return sess
	}
	return session.NewStore()
}
