package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

func TestClient_Do_SendsBearerToken(t *testing.T) {
	// Arrange
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.City{{ID: 6, Name: "Ankara"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	addressGateway := NewAddressGateway(client)

	// Act
	cities, err := addressGateway.Cities(context.Background(), "test-token")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Len(t, cities, 1)
	assert.Equal(t, "Ankara", cities[0].Name)
}

// Başarısız yanıt APIError'a çevrilir; gövdedeki message alanı taşınır
func TestClient_Do_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "geçersiz kimlik"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	authGateway := NewAuthGateway(client)

	_, err := authGateway.Login(context.Background(), &models.LoginRequest{Email: "a@example.com", Password: "x"})

	assert.Error(t, err)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "geçersiz kimlik", apiErr.Message)
}

func TestTasinmazGateway_Delete(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tasinmazGateway := NewTasinmazGateway(NewClient(server.URL))

	err := tasinmazGateway.Delete(context.Background(), "token", 7)

	assert.NoError(t, err)
	assert.Equal(t, "DELETE", gotMethod)
	assert.Equal(t, "/Tasinmaz/7", gotPath)
}
