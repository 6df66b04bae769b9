package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// UserGateway User endpoint'lerini sarar
type UserGateway struct {
	client *Client
}

// NewUserGateway yeni gateway oluşturur
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

// All tüm kullanıcıları getirir
func (g *UserGateway) All(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := g.client.do(ctx, http.MethodGet, "/User", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ByID tek kullanıcıyı getirir
func (g *UserGateway) ByID(ctx context.Context, token string, id int) (*models.User, error) {
	var user models.User
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/User/%d", id), token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create yeni kullanıcı kaydı oluşturur
func (g *UserGateway) Create(ctx context.Context, token string, user *models.User) error {
	return g.client.do(ctx, http.MethodPost, "/User", token, user, nil)
}

// Update mevcut kullanıcıyı günceller
func (g *UserGateway) Update(ctx context.Context, token string, id int, user *models.User) error {
	return g.client.do(ctx, http.MethodPut, fmt.Sprintf("/User/%d", id), token, user, nil)
}

// Delete kullanıcıyı siler
func (g *UserGateway) Delete(ctx context.Context, token string, id int) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/User/%d", id), token, nil, nil)
}
