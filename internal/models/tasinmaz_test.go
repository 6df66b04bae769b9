package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Adres seçimi zorunlu; ada/parsel/nitelik/koordinat opsiyoneldir
func TestTasinmazForm_Validate(t *testing.T) {
	form := TasinmazForm{City: 6, District: 60, NeighborhoodID: 600}
	assert.Nil(t, form.Validate())

	empty := TasinmazForm{Island: "101", Parcel: "5"}
	verr := empty.Validate()

	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "city")
	assert.Contains(t, verr.Fields, "district")
	assert.Contains(t, verr.Fields, "neighborhoodId")

	// Geçersiz gönderim tüm alanları touched işaretler
	assert.True(t, empty.Touched["city"])
	assert.True(t, empty.Touched["island"])
}

func TestTasinmazForm_ToTasinmaz(t *testing.T) {
	form := TasinmazForm{
		City:           6,
		District:       60,
		NeighborhoodID: 600,
		Island:         "101",
		Parcel:         "5",
		Quality:        "Arsa",
		Coordinates:    "32.85, 39.92",
		UserID:         42,
	}

	item := form.ToTasinmaz()

	assert.Equal(t, 600, item.NeighborhoodID)
	assert.Equal(t, 42, item.UserID)
	assert.Equal(t, "32.85, 39.92", item.CoordinateInformation)
}

// Backend sözleşmesindeki alan adları ("neigborhood" yazımı dahil) korunur
func TestTasinmaz_JSONFieldNames(t *testing.T) {
	item := Tasinmaz{
		ID:             1,
		NeighborhoodID: 600,
		Neighborhood:   &Neighborhood{ID: 600, NeighborhoodName: "Kızılay"},
	}

	payload, err := json.Marshal(item)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), `"neigborhoodId":600`)
	assert.Contains(t, string(payload), `"neigborhood":`)
}

func TestTasinmaz_DisplayNames(t *testing.T) {
	// Hiyerarşi eksikse boş string, panic yok
	bare := Tasinmaz{ID: 1}
	assert.Equal(t, "", bare.CityName())
	assert.Equal(t, "", bare.DistrictName())
	assert.Equal(t, "", bare.NeighborhoodName())

	full := Tasinmaz{
		Neighborhood: &Neighborhood{
			NeighborhoodName: "Kızılay",
			District: &District{
				DistrictName: "Çankaya",
				City:         &City{Name: "Ankara"},
			},
		},
	}
	assert.Equal(t, "Ankara", full.CityName())
	assert.Equal(t, "Çankaya", full.DistrictName())
	assert.Equal(t, "Kızılay", full.NeighborhoodName())
}
