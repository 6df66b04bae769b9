package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

func TestTasinmazlar_WritesSelectedItems(t *testing.T) {
	// Arrange
	items := []models.Tasinmaz{
		{
			ID:                    1,
			Island:                "101",
			Parcel:                "5",
			Quality:               "Arsa",
			CoordinateInformation: "32.85, 39.92",
			Neighborhood: &models.Neighborhood{
				NeighborhoodName: "Kızılay",
				District: &models.District{
					DistrictName: "Çankaya",
					City:         &models.City{Name: "Ankara"},
				},
			},
		},
	}

	// Act
	var buf bytes.Buffer
	err := Tasinmazlar(&buf, items)

	// Assert: üretilen dosya geri okunabilir ve beklenen satırları içerir
	assert.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Selected Items")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"City", "District", "Neighborhood", "Island", "Parcel", "Quality", "Coordinates"}, rows[0])
	assert.Equal(t, "Ankara", rows[1][0])
	assert.Equal(t, "32.85, 39.92", rows[1][6])
}

func TestLogs_FormatsDate(t *testing.T) {
	entries := []models.LogEntry{
		{
			Durum:        models.DurumBasarili,
			IslemTip:     models.IslemLogin,
			Aciklama:     "giriş yapıldı",
			KullaniciTip: "admin",
			TarihveSaat:  time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	err := Logs(&buf, entries)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Logs")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "10/05/2024 14:30", rows[1][4])
}
