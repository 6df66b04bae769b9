package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/geomap"
	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
)

// Extent hesabında her kenara eklenen pay (derece)
const extentPadding = 0.05

// MapHandler harita widget'larının endpoint'lerini yönetir: form içi koordinat
// seçici, salt okunur görüntüleyici ve bağımsız çizim sayfası.
type MapHandler struct {
	tasinmazService *services.TasinmazService
}

// NewMapHandler yeni handler oluşturur
func NewMapHandler(tasinmazService *services.TasinmazService) *MapHandler {
	return &MapHandler{tasinmazService: tasinmazService}
}

// Pick harita tıklamasını koordinat string'ine çevirir (ekleme/düzenleme
// formu). Her tıklama önceki işaretçiyi değiştirir.
func (h *MapHandler) Pick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	picker := geomap.NewPicker()
	coordinate := picker.Click(req.X, req.Y)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"coordinateInformation": coordinate,
		"marker":                picker.Marker(),
	}, "Koordinat seçildi")
}

// Markers oturumdaki kullanıcının görebildiği taşınmazları işaretçi olarak
// döner. Bozuk koordinatlı kayıtlar atlanır; extent kalan işaretçileri kapsar.
func (h *MapHandler) Markers(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	items, err := h.tasinmazService.List(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("Harita verisi yüklenemedi")
		writeError(w, http.StatusBadGateway, "Taşınmazlar yüklenirken bir hata oluştu")
		return
	}

	viewer := geomap.NewViewer()
	plotted := viewer.Plot(items)

	data := map[string]interface{}{
		"markers": viewer.Markers(),
		"plotted": plotted,
	}
	if extent, ok := viewer.FitExtent(extentPadding); ok {
		data["extent"] = extent
	}

	writeJSON(w, http.StatusOK, data, "Harita işaretçileri getirildi")
}

// drawAction çizim sayfasındaki tek bir kullanıcı etkileşimidir
type drawAction struct {
	Type    string          `json:"type"` // mode | click | line | circle | zoomIn | zoomOut | base | opacity
	Mode    string          `json:"mode,omitempty"`
	X       float64         `json:"x,omitempty"`
	Y       float64         `json:"y,omitempty"`
	Points  []geomap.Marker `json:"points,omitempty"`
	Center  geomap.Marker   `json:"center,omitempty"`
	Radius  float64         `json:"radius,omitempty"`
	Layer   string          `json:"layer,omitempty"`
	Opacity float64         `json:"opacity,omitempty"`
}

// Draw çizim sayfasının etkileşim dizisini baştan oynatır ve son durumu
// döner. Sayfa taşınmaz verisinden bağımsızdır; üretilen geometriler hiçbir
// yere kaydedilmez.
func (h *MapHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Actions []drawAction `json:"actions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	annotator := geomap.NewAnnotator()
	for _, action := range req.Actions {
		switch action.Type {
		case "mode":
			annotator.SetMode(geomap.DrawMode(action.Mode))
		case "click":
			annotator.Click(action.X, action.Y)
		case "line":
			annotator.DrawLine(action.Points)
		case "circle":
			annotator.DrawCircle(action.Center, action.Radius)
		case "zoomIn":
			annotator.ZoomIn()
		case "zoomOut":
			annotator.ZoomOut()
		case "base":
			annotator.SwitchBase(geomap.BaseLayer(action.Layer))
		case "opacity":
			annotator.SetOpacity(action.Opacity)
		case "clear":
			annotator.ClearShapes()
		default:
			log.Warn().Str("type", action.Type).Msg("Bilinmeyen çizim aksiyonu yok sayıldı")
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"shapes":  annotator.Shapes(),
		"mode":    annotator.Mode(),
		"zoom":    annotator.Zoom(),
		"base":    annotator.Base(),
		"opacity": annotator.Opacity(),
	}, "Çizim durumu hesaplandı")
}
