package geomap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotator_Defaults(t *testing.T) {
	a := NewAnnotator()

	assert.Equal(t, ModeMarker, a.Mode())
	assert.Equal(t, LayerOSM, a.Base())
	assert.Equal(t, 6.5, a.Zoom())
	assert.Equal(t, 1.0, a.Opacity())
	assert.Empty(t, a.Shapes())
}

// Tıklama yalnızca marker modunda shape üretir
func TestAnnotator_ClickRespectsMode(t *testing.T) {
	a := NewAnnotator()

	a.Click(FromLonLat(35, 39))
	assert.Len(t, a.Shapes(), 1)

	a.SetMode(ModeLine)
	a.Click(FromLonLat(30, 40))
	assert.Len(t, a.Shapes(), 1)
}

func TestAnnotator_DrawLineAndCircle(t *testing.T) {
	a := NewAnnotator()

	// Yanlış modda çizim yok sayılır
	a.DrawLine([]Marker{{Lon: 30, Lat: 39}, {Lon: 31, Lat: 40}})
	assert.Empty(t, a.Shapes())

	a.SetMode(ModeLine)
	a.DrawLine([]Marker{{Lon: 30, Lat: 39}})
	assert.Empty(t, a.Shapes(), "tek noktalı çizgi geçersiz")
	a.DrawLine([]Marker{{Lon: 30, Lat: 39}, {Lon: 31, Lat: 40}})
	assert.Len(t, a.Shapes(), 1)

	a.SetMode(ModeCircle)
	a.DrawCircle(Marker{Lon: 32, Lat: 39}, 0)
	assert.Len(t, a.Shapes(), 1, "sıfır yarıçap geçersiz")
	a.DrawCircle(Marker{Lon: 32, Lat: 39}, 1500)
	assert.Len(t, a.Shapes(), 2)
	assert.Equal(t, 1500.0, a.Shapes()[1].Radius)
}

// Zoom sınırlara dayanınca sabit kalır
func TestAnnotator_ZoomClamped(t *testing.T) {
	a := NewAnnotator()

	for i := 0; i < 30; i++ {
		a.ZoomIn()
	}
	assert.Equal(t, 19.0, a.Zoom())

	for i := 0; i < 30; i++ {
		a.ZoomOut()
	}
	assert.Equal(t, 1.0, a.Zoom())
}

// Opaklık alt sınırın altına inmez; katman tamamen görünmez olamaz
func TestAnnotator_OpacityClamped(t *testing.T) {
	a := NewAnnotator()

	assert.Equal(t, 0.2, a.SetOpacity(0))
	assert.Equal(t, 0.2, a.SetOpacity(-1))
	assert.Equal(t, 1.0, a.SetOpacity(5))
	assert.Equal(t, 0.6, a.SetOpacity(0.6))
}

func TestAnnotator_SwitchBaseIgnoresUnknown(t *testing.T) {
	a := NewAnnotator()

	a.SwitchBase(LayerSatellite)
	assert.Equal(t, LayerSatellite, a.Base())

	a.SwitchBase(BaseLayer("bilinmeyen"))
	assert.Equal(t, LayerSatellite, a.Base())
}
