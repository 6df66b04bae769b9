package services

import (
	"context"
	"fmt"

	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// AddressState kademeli adres seçiminin durumudur
type AddressState int

const (
	NoCitySelected AddressState = iota
	CitySelected
	DistrictSelected
	NeighborhoodSelected
)

// AddressCascade il → ilçe → mahalle seçimini açık bir durum makinesi olarak
// yürütür. Her geçiş bağımlı alt seçimleri temizler ve tam olarak bir fetch
// tetikler.
type AddressCascade struct {
	gateway interfaces.AddressGatewayInterface
	token   string

	state         AddressState
	cities        []models.City
	districts     []models.District
	neighborhoods []models.Neighborhood

	selectedCity         int
	selectedDistrict     int
	selectedNeighborhood int
}

// NewAddressCascade verilen oturum token'ı ile boş durum makinesi döner
func NewAddressCascade(gateway interfaces.AddressGatewayInterface, token string) *AddressCascade {
	return &AddressCascade{gateway: gateway, token: token, state: NoCitySelected}
}

// LoadCities il listesini getirir; seçim durumuna dokunmaz
func (c *AddressCascade) LoadCities(ctx context.Context) error {
	cities, err := c.gateway.Cities(ctx, c.token)
	if err != nil {
		return fmt.Errorf("iller yüklenemedi: %w", err)
	}
	c.cities = cities
	return nil
}

// SelectCity il seçer: ilçe ve mahalle seçimleri her koşulda sıfırlanır,
// seçilen ilin ilçeleri tek fetch ile yüklenir.
func (c *AddressCascade) SelectCity(ctx context.Context, cityID int) error {
	c.selectedDistrict = 0
	c.selectedNeighborhood = 0
	c.neighborhoods = nil

	if cityID == 0 {
		c.selectedCity = 0
		c.districts = nil
		c.state = NoCitySelected
		return nil
	}

	districts, err := c.gateway.DistrictsByCity(ctx, c.token, cityID)
	if err != nil {
		return fmt.Errorf("ilçeler yüklenemedi: %w", err)
	}

	c.selectedCity = cityID
	c.districts = districts
	c.state = CitySelected
	return nil
}

// SelectDistrict ilçe seçer: mahalle seçimi sıfırlanır, seçilen ilçenin
// mahalleleri tek fetch ile yüklenir. İl seçilmeden çağrılamaz.
func (c *AddressCascade) SelectDistrict(ctx context.Context, districtID int) error {
	if c.state < CitySelected {
		return fmt.Errorf("önce il seçilmelidir")
	}

	c.selectedNeighborhood = 0

	if districtID == 0 {
		c.selectedDistrict = 0
		c.neighborhoods = nil
		c.state = CitySelected
		return nil
	}

	neighborhoods, err := c.gateway.NeighborhoodsByDistrict(ctx, c.token, districtID)
	if err != nil {
		return fmt.Errorf("mahalleler yüklenemedi: %w", err)
	}

	c.selectedDistrict = districtID
	c.neighborhoods = neighborhoods
	c.state = DistrictSelected
	return nil
}

// SelectNeighborhood mahalle seçer; yüklü listede olmayan id reddedilir
func (c *AddressCascade) SelectNeighborhood(neighborhoodID int) error {
	if c.state < DistrictSelected {
		return fmt.Errorf("önce ilçe seçilmelidir")
	}

	for _, n := range c.neighborhoods {
		if n.ID == neighborhoodID {
			c.selectedNeighborhood = neighborhoodID
			c.state = NeighborhoodSelected
			return nil
		}
	}
	return fmt.Errorf("mahalle seçili ilçeye ait değil")
}

// State mevcut durumu döner
func (c *AddressCascade) State() AddressState {
	return c.state
}

// Cities yüklü il listesini döner
func (c *AddressCascade) Cities() []models.City {
	return c.cities
}

// Districts yüklü ilçe listesini döner
func (c *AddressCascade) Districts() []models.District {
	return c.districts
}

// Neighborhoods yüklü mahalle listesini döner
func (c *AddressCascade) Neighborhoods() []models.Neighborhood {
	return c.neighborhoods
}

// Selection seçili il/ilçe/mahalle id'lerini döner (0 = seçilmemiş)
func (c *AddressCascade) Selection() (cityID, districtID, neighborhoodID int) {
	return c.selectedCity, c.selectedDistrict, c.selectedNeighborhood
}
