package geomap

// DrawMode çizim sayfasındaki aktif etkileşim modudur
type DrawMode string

const (
	ModeMarker DrawMode = "marker"
	ModeLine   DrawMode = "line"
	ModeCircle DrawMode = "circle"
)

// BaseLayer altlık katman seçimidir
type BaseLayer string

const (
	LayerOSM       BaseLayer = "osm"
	LayerSatellite BaseLayer = "satellite"
)

// Katman tamamen görünmez olmasın diye opaklık bu değerin altına inmez
const minOpacity = 0.2

// Zoom sınırları ve Türkiye merkezli başlangıç görünümü
const (
	minZoom     = 1.0
	maxZoom     = 19.0
	defaultZoom = 6.5
)

// Shape çizim sayfasında üretilen bir geometridir. Circle modunda Points tek
// merkez noktası içerir ve Radius metre cinsindendir.
type Shape struct {
	Mode   DrawMode `json:"mode"`
	Points []Marker `json:"points"`
	Radius float64  `json:"radius,omitempty"`
}

// Annotator bağımsız çizim sayfasının durumudur: aktif mod, zoom, altlık
// katman ve biriken geometriler.
type Annotator struct {
	mode    DrawMode
	base    BaseLayer
	zoom    float64
	opacity float64
	shapes  []Shape
}

// NewAnnotator varsayılan durumla (marker modu, OSM altlık) döner
func NewAnnotator() *Annotator {
	return &Annotator{
		mode:    ModeMarker,
		base:    LayerOSM,
		zoom:    defaultZoom,
		opacity: 1.0,
	}
}

// SetMode aktif çizim modunu değiştirir; bilinmeyen mod yok sayılır
func (a *Annotator) SetMode(mode DrawMode) {
	switch mode {
	case ModeMarker, ModeLine, ModeCircle:
		a.mode = mode
	}
}

// Mode aktif modu döner
func (a *Annotator) Mode() DrawMode {
	return a.mode
}

// Click aktif moda göre tıklamayı işler. Marker modunda tek noktalı shape
// ekler; diğer modlarda Draw kullanılır.
func (a *Annotator) Click(x, y float64) {
	if a.mode != ModeMarker {
		return
	}
	lon, lat := ToLonLat(x, y)
	a.shapes = append(a.shapes, Shape{Mode: ModeMarker, Points: []Marker{{Lon: lon, Lat: lat}}})
}

// DrawLine line modunda çoklu noktadan geometri ekler
func (a *Annotator) DrawLine(points []Marker) {
	if a.mode != ModeLine || len(points) < 2 {
		return
	}
	a.shapes = append(a.shapes, Shape{Mode: ModeLine, Points: points})
}

// DrawCircle circle modunda merkez + yarıçaptan geometri ekler
func (a *Annotator) DrawCircle(center Marker, radius float64) {
	if a.mode != ModeCircle || radius <= 0 {
		return
	}
	a.shapes = append(a.shapes, Shape{Mode: ModeCircle, Points: []Marker{center}, Radius: radius})
}

// Shapes biriken geometrileri döner
func (a *Annotator) Shapes() []Shape {
	return a.shapes
}

// ClearShapes tüm geometrileri siler
func (a *Annotator) ClearShapes() {
	a.shapes = nil
}

// ZoomIn görünümü bir seviye yaklaştırır; üst sınıra dayanır
func (a *Annotator) ZoomIn() float64 {
	a.zoom++
	if a.zoom > maxZoom {
		a.zoom = maxZoom
	}
	return a.zoom
}

// ZoomOut görünümü bir seviye uzaklaştırır; alt sınıra dayanır
func (a *Annotator) ZoomOut() float64 {
	a.zoom--
	if a.zoom < minZoom {
		a.zoom = minZoom
	}
	return a.zoom
}

// Zoom mevcut zoom seviyesini döner
func (a *Annotator) Zoom() float64 {
	return a.zoom
}

// SwitchBase altlık katmanı değiştirir (osm <-> uydu)
func (a *Annotator) SwitchBase(layer BaseLayer) {
	switch layer {
	case LayerOSM, LayerSatellite:
		a.base = layer
	}
}

// Base aktif altlık katmanı döner
func (a *Annotator) Base() BaseLayer {
	return a.base
}

// SetOpacity altlık opaklığını ayarlar. En az bir katman görünür kalsın diye
// değer minOpacity'nin altına, 1.0'ın üstüne taşamaz.
func (a *Annotator) SetOpacity(opacity float64) float64 {
	if opacity < minOpacity {
		opacity = minOpacity
	}
	if opacity > 1.0 {
		opacity = 1.0
	}
	a.opacity = opacity
	return a.opacity
}

// Opacity mevcut opaklığı döner
func (a *Annotator) Opacity() float64 {
	return a.opacity
}
