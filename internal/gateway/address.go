package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// AddressGateway il/ilçe/mahalle referans verisini sarar
type AddressGateway struct {
	client *Client
}

// NewAddressGateway yeni gateway oluşturur
func NewAddressGateway(client *Client) *AddressGateway {
	return &AddressGateway{client: client}
}

// Cities tüm illeri getirir
func (g *AddressGateway) Cities(ctx context.Context, token string) ([]models.City, error) {
	var cities []models.City
	if err := g.client.do(ctx, http.MethodGet, "/City", token, nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// DistrictsByCity ile bağlı ilçeleri getirir
func (g *AddressGateway) DistrictsByCity(ctx context.Context, token string, cityID int) ([]models.District, error) {
	var districts []models.District
	path := fmt.Sprintf("/District/by-city/%d", cityID)
	if err := g.client.do(ctx, http.MethodGet, path, token, nil, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

// NeighborhoodsByDistrict ilçeye bağlı mahalleleri getirir
func (g *AddressGateway) NeighborhoodsByDistrict(ctx context.Context, token string, districtID int) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	path := fmt.Sprintf("/Neighborhood/by-district/%d", districtID)
	if err := g.client.do(ctx, http.MethodGet, path, token, nil, &neighborhoods); err != nil {
		return nil, err
	}
	return neighborhoods, nil
}
