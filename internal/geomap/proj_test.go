package geomap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCoordinate_IntegerValues(t *testing.T) {
	// Tam sayı değerler ondalıksız yazılır
	assert.Equal(t, "35, 39", FormatCoordinate(35, 39))
	assert.Equal(t, "32.85, 39.92", FormatCoordinate(32.85, 39.92))
}

func TestParseCoordinate_Success(t *testing.T) {
	lon, lat, err := ParseCoordinate("32.85, 39.92")

	assert.NoError(t, err)
	assert.Equal(t, 32.85, lon)
	assert.Equal(t, 39.92, lat)
}

func TestParseCoordinate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"35",
		"35, 39, 41",
		"abc, 39",
		"35, xyz",
	}
	for _, s := range cases {
		_, _, err := ParseCoordinate(s)
		assert.Error(t, err, "girdi: %q", s)
	}
}

func TestProjection_RoundTrip(t *testing.T) {
	x, y := FromLonLat(32.85, 39.92)
	lon, lat := ToLonLat(x, y)

	assert.InDelta(t, 32.85, lon, 1e-9)
	assert.InDelta(t, 39.92, lat, 1e-9)
}
