package geomap

// Marker haritadaki tek bir işaret noktasıdır (coğrafi koordinat)
type Marker struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Picker ekleme formuna gömülü koordinat seçicisidir. Her tıklama önceki
// işaretçiyi değiştirir; aynı anda en fazla bir işaretçi bulunur.
type Picker struct {
	marker *Marker
}

// NewPicker boş seçici döner
func NewPicker() *Picker {
	return &Picker{}
}

// Click harita (Web Mercator) koordinatındaki tıklamayı işler: işaretçiyi
// değiştirir ve forma yazılacak "lon, lat" string'ini döner.
func (p *Picker) Click(x, y float64) string {
	lon, lat := ToLonLat(x, y)
	p.marker = &Marker{Lon: lon, Lat: lat}
	return FormatCoordinate(lon, lat)
}

// Marker mevcut işaretçiyi döner, yoksa nil
func (p *Picker) Marker() *Marker {
	return p.marker
}

// Clear işaretçiyi kaldırır
func (p *Picker) Clear() {
	p.marker = nil
}
