package session

import "net/http"

// Cookie adları; orijinal istemcinin local storage anahtarlarıyla aynı
// sözleşme korunur
const (
	TokenCookie  = "authToken"
	UserIDCookie = "userId"
)

// FromRequest istek cookie'lerinden oturumu kurar. Cookie yoksa veya token
// decode edilemiyorsa boş oturum döner.
func FromRequest(r *http.Request) *Store {
	store := NewStore()
	cookie, err := r.Cookie(TokenCookie)
	if err != nil {
		return store
	}
	store.SetToken(cookie.Value)
	return store
}

// Write oturumu yanıt cookie'lerine yazar
func (s *Store) Write(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    s.Token(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     UserIDCookie,
		Value:    s.UserID(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookies oturum cookie'lerini geçersiz kılar
func ClearCookies(w http.ResponseWriter) {
	for _, name := range []string{TokenCookie, UserIDCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
}
