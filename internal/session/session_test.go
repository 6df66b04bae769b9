package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// testToken imzalı bir JWT üretir; panel imza doğrulamadığı için test
// anahtarının değeri önemsizdir
func testToken(t *testing.T, nameid, email, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"nameid": nameid,
		"email":  email,
		"role":   role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestStore_SetToken_Success(t *testing.T) {
	// Arrange
	store := NewStore()
	token := testToken(t, "42", "ali@example.com", "user")

	// Act
	store.SetToken(token)

	// Assert
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, token, store.Token())
	assert.Equal(t, "42", store.UserID())
	assert.Equal(t, "ali@example.com", store.Email())
	assert.Equal(t, "user", store.Role())
}

// Bozuk token saklanmaz; oturum çıkış yapılmış durumda kalır
func TestStore_SetToken_MalformedToken(t *testing.T) {
	store := NewStore()

	store.SetToken("bozuk-token-degeri")

	assert.False(t, store.IsLoggedIn())
	assert.False(t, store.IsAdmin())
	assert.Equal(t, "", store.Token())
	assert.Equal(t, "", store.UserID())
}

// Role claim'i tam olarak "admin" olmalı; farklı yazımlar yetki vermez
func TestStore_IsAdmin_ExactMatch(t *testing.T) {
	cases := []struct {
		role  string
		admin bool
	}{
		{"admin", true},
		{"Admin", false},
		{"ADMIN", false},
		{"user", false},
		{"", false},
	}

	for _, tc := range cases {
		store := NewStore()
		store.SetToken(testToken(t, "1", "a@example.com", tc.role))
		assert.Equal(t, tc.admin, store.IsAdmin(), "role: %q", tc.role)
	}
}

func TestStore_Role_DefaultsToUnknown(t *testing.T) {
	store := NewStore()

	// Token yokken rol bilinmiyor
	assert.Equal(t, "bilinmiyor", store.Role())

	// Role claim'i boş token'da da bilinmiyor
	store.SetToken(testToken(t, "1", "a@example.com", ""))
	assert.Equal(t, "bilinmiyor", store.Role())
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.SetToken(testToken(t, "7", "b@example.com", "admin"))
	assert.True(t, store.IsAdmin())

	store.Clear()

	assert.False(t, store.IsLoggedIn())
	assert.False(t, store.IsAdmin())
	assert.Equal(t, "", store.UserID())
	assert.Equal(t, "", store.Email())
}
