package geomap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// Bozuk ve boş koordinatlar atlanır; kalanlar işaretçi olur
func TestViewer_Plot_SkipsMalformed(t *testing.T) {
	viewer := NewViewer()
	items := []models.Tasinmaz{
		{ID: 1, CoordinateInformation: "32.85, 39.92"},
		{ID: 2, CoordinateInformation: ""},
		{ID: 3, CoordinateInformation: "bozuk"},
		{ID: 4, CoordinateInformation: "27.14, 38.42"},
	}

	added := viewer.Plot(items)

	assert.Equal(t, 2, added)
	assert.Len(t, viewer.Markers(), 2)
}

func TestViewer_FitExtent(t *testing.T) {
	viewer := NewViewer()
	viewer.Plot([]models.Tasinmaz{
		{ID: 1, CoordinateInformation: "27, 38"},
		{ID: 2, CoordinateInformation: "35, 41"},
		{ID: 3, CoordinateInformation: "30, 39"},
	})

	extent, ok := viewer.FitExtent(0.5)

	assert.True(t, ok)
	assert.InDelta(t, 26.5, extent.MinLon, 1e-9)
	assert.InDelta(t, 35.5, extent.MaxLon, 1e-9)
	assert.InDelta(t, 37.5, extent.MinLat, 1e-9)
	assert.InDelta(t, 41.5, extent.MaxLat, 1e-9)
}

func TestViewer_FitExtent_NoMarkers(t *testing.T) {
	viewer := NewViewer()

	_, ok := viewer.FitExtent(0.5)

	assert.False(t, ok)
}
