package gateway

import (
	"context"
	"net/http"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// LogGateway Log endpoint'lerini sarar
type LogGateway struct {
	client *Client
}

// NewLogGateway yeni gateway oluşturur
func NewLogGateway(client *Client) *LogGateway {
	return &LogGateway{client: client}
}

// All tüm log kayıtlarını getirir
func (g *LogGateway) All(ctx context.Context, token string) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := g.client.do(ctx, http.MethodGet, "/Log", token, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Add yeni log kaydı yazar
func (g *LogGateway) Add(ctx context.Context, token string, entry *models.LogEntry) error {
	return g.client.do(ctx, http.MethodPost, "/Log", token, entry, nil)
}
