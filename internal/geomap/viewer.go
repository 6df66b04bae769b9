package geomap

import (
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// Extent işaretçileri kapsayan dikdörtgendir (coğrafi koordinat)
type Extent struct {
	MinLon float64 `json:"minLon"`
	MinLat float64 `json:"minLat"`
	MaxLon float64 `json:"maxLon"`
	MaxLat float64 `json:"maxLat"`
}

// Viewer salt okunur harita görünümüdür: görünür taşınmazları işaretçi
// olarak toplar ve görünümü hepsini kapsayacak şekilde sığdırır.
type Viewer struct {
	markers []Marker
}

// NewViewer boş görüntüleyici döner
func NewViewer() *Viewer {
	return &Viewer{}
}

// Plot taşınmaz listesini işaretçilere çevirir. Bozuk veya boş koordinat
// string'leri uyarı loglanarak atlanır; eklenen işaretçi sayısı döner.
func (v *Viewer) Plot(items []models.Tasinmaz) int {
	added := 0
	for _, item := range items {
		if item.CoordinateInformation == "" {
			log.Warn().Int("tasinmaz_id", item.ID).Msg("Koordinat bilgisi yok, işaretçi atlandı")
			continue
		}
		lon, lat, err := ParseCoordinate(item.CoordinateInformation)
		if err != nil {
			log.Warn().
				Err(err).
				Int("tasinmaz_id", item.ID).
				Str("koordinat", item.CoordinateInformation).
				Msg("Geçersiz koordinat formatı, işaretçi atlandı")
			continue
		}
		v.markers = append(v.markers, Marker{Lon: lon, Lat: lat})
		added++
	}
	return added
}

// Markers mevcut işaretçileri döner
func (v *Viewer) Markers() []Marker {
	return v.markers
}

// FitExtent tüm işaretçileri kapsayan extent'i döner. padding her kenara
// derece cinsinden eklenir. İşaretçi yoksa ok false döner.
func (v *Viewer) FitExtent(padding float64) (Extent, bool) {
	if len(v.markers) == 0 {
		log.Warn().Msg("Haritaya sığdırılacak işaretçi yok")
		return Extent{}, false
	}

	ext := Extent{
		MinLon: v.markers[0].Lon,
		MaxLon: v.markers[0].Lon,
		MinLat: v.markers[0].Lat,
		MaxLat: v.markers[0].Lat,
	}
	for _, m := range v.markers[1:] {
		if m.Lon < ext.MinLon {
			ext.MinLon = m.Lon
		}
		if m.Lon > ext.MaxLon {
			ext.MaxLon = m.Lon
		}
		if m.Lat < ext.MinLat {
			ext.MinLat = m.Lat
		}
		if m.Lat > ext.MaxLat {
			ext.MaxLat = m.Lat
		}
	}

	ext.MinLon -= padding
	ext.MaxLon += padding
	ext.MinLat -= padding
	ext.MaxLat += padding
	return ext, true
}
