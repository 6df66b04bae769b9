package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// AuthGateway Auth endpoint'lerini sarar
type AuthGateway struct {
	client *Client
}

// NewAuthGateway yeni gateway oluşturur
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login backend'e giriş isteği gönderir ve bearer token döner
func (g *AuthGateway) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	var resp models.LoginResponse
	if err := g.client.do(ctx, http.MethodPost, "/Auth/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("yanıt beklenen token alanını içermiyor")
	}
	return resp.Token, nil
}

// Register yeni kullanıcı kaydını backend'e iletir
func (g *AuthGateway) Register(ctx context.Context, token string, user *models.User) error {
	return g.client.do(ctx, http.MethodPost, "/Auth/register", token, user, nil)
}
