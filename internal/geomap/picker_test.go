package geomap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tıklama coğrafi karşılığını forma yazar; ikinci tıklama önceki işaretçiyi
// değiştirir, birikmez
func TestPicker_ClickReplacesMarker(t *testing.T) {
	picker := NewPicker()

	x, y := FromLonLat(35, 39)
	coordinate := picker.Click(x, y)

	lon, lat, err := ParseCoordinate(coordinate)
	assert.NoError(t, err)
	assert.InDelta(t, 35, lon, 1e-9)
	assert.InDelta(t, 39, lat, 1e-9)

	marker := picker.Marker()
	assert.NotNil(t, marker)
	assert.InDelta(t, 35, marker.Lon, 1e-9)

	// İkinci tıklama
	x2, y2 := FromLonLat(27.14, 38.42)
	picker.Click(x2, y2)

	marker = picker.Marker()
	assert.NotNil(t, marker)
	assert.InDelta(t, 27.14, marker.Lon, 1e-9)
	assert.InDelta(t, 38.42, marker.Lat, 1e-9)
}

func TestPicker_Clear(t *testing.T) {
	picker := NewPicker()
	picker.Click(FromLonLat(35, 39))

	picker.Clear()

	assert.Nil(t, picker.Marker())
}
