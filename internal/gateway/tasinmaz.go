package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// TasinmazGateway Tasinmaz endpoint'lerini sarar
type TasinmazGateway struct {
	client *Client
}

// NewTasinmazGateway yeni gateway oluşturur
func NewTasinmazGateway(client *Client) *TasinmazGateway {
	return &TasinmazGateway{client: client}
}

// All tüm taşınmazları getirir (admin görünümü)
func (g *TasinmazGateway) All(ctx context.Context, token string) ([]models.Tasinmaz, error) {
	var items []models.Tasinmaz
	if err := g.client.do(ctx, http.MethodGet, "/Tasinmaz", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByUser kullanıcıya ait taşınmazları getirir
func (g *TasinmazGateway) ByUser(ctx context.Context, token, userID string) ([]models.Tasinmaz, error) {
	var items []models.Tasinmaz
	if err := g.client.do(ctx, http.MethodGet, "/Tasinmaz/user/"+userID, token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByID tek taşınmaz detayını getirir
func (g *TasinmazGateway) ByID(ctx context.Context, token string, id int) (*models.Tasinmaz, error) {
	var item models.Tasinmaz
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/Tasinmaz/%d", id), token, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create yeni taşınmaz kaydı oluşturur
func (g *TasinmazGateway) Create(ctx context.Context, token string, item *models.Tasinmaz) error {
	return g.client.do(ctx, http.MethodPost, "/Tasinmaz", token, item, nil)
}

// Update mevcut kaydı günceller
func (g *TasinmazGateway) Update(ctx context.Context, token string, id int, item *models.Tasinmaz) error {
	return g.client.do(ctx, http.MethodPut, fmt.Sprintf("/Tasinmaz/%d", id), token, item, nil)
}

// Delete kaydı siler
func (g *TasinmazGateway) Delete(ctx context.Context, token string, id int) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/Tasinmaz/%d", id), token, nil, nil)
}
