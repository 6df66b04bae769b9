// Package geomap harita bileşenlerinin geometri tarafını taşır: Web Mercator
// projeksiyonu, koordinat string sözleşmesi ve seçici/görüntüleyici/çizim
// durum makineleri. Tile render'ı dışarıda kalır; burada yalnızca geometri var.
package geomap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const earthRadius = 6378137.0

// FromLonLat coğrafi koordinatı Web Mercator'a (EPSG:3857) çevirir
func FromLonLat(lon, lat float64) (x, y float64) {
	x = earthRadius * lon * math.Pi / 180
	y = earthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
	return x, y
}

// ToLonLat Web Mercator koordinatını coğrafi koordinata çevirir
func ToLonLat(x, y float64) (lon, lat float64) {
	lon = x / earthRadius * 180 / math.Pi
	lat = (2*math.Atan(math.Exp(y/earthRadius)) - math.Pi/2) * 180 / math.Pi
	return lon, lat
}

// FormatCoordinate "lon, lat" string sözleşmesini üretir. Tam sayı değerler
// ondalıksız yazılır ("35, 39").
func FormatCoordinate(lon, lat float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + ", " + strconv.FormatFloat(lat, 'f', -1, 64)
}

// ParseCoordinate "lon, lat" string'ini çözer
func ParseCoordinate(s string) (lon, lat float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("geçersiz koordinat formatı: %q", s)
	}

	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geçersiz boylam: %q", parts[0])
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geçersiz enlem: %q", parts[1])
	}
	return lon, lat, nil
}
