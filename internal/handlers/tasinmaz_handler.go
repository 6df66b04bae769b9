package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/export"
	"github.com/onerilhan/tasinmaz-panel/internal/listview"
	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
)

// TasinmazHandler taşınmaz liste/form endpoint'lerini yönetir
type TasinmazHandler struct {
	tasinmazService *services.TasinmazService
}

// NewTasinmazHandler yeni handler oluşturur
func NewTasinmazHandler(tasinmazService *services.TasinmazService) *TasinmazHandler {
	return &TasinmazHandler{tasinmazService: tasinmazService}
}

// List taşınmaz listesini döner; arama ve sayfalama lokaldir. Admin tüm
// kayıtları, diğer kullanıcılar kendi kayıtlarını görür.
func (h *TasinmazHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	items, err := h.tasinmazService.List(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("Veri yükleme hatası")
		writeError(w, http.StatusBadGateway, "Taşınmazlar yüklenirken bir hata oluştu")
		return
	}

	searchTerm := r.URL.Query().Get("search")
	page := parsePage(r)

	filtered := listview.Filter(items, searchTerm, services.SearchFields)
	// Arama terimi değiştiğinde istemci page=0 gönderir
	pageItems := listview.Page(filtered, page, services.TasinmazPageSize)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":       pageItems,
		"totalCount":  len(filtered),
		"totalPages":  listview.TotalPages(len(filtered), services.TasinmazPageSize),
		"currentPage": page,
		"pageSize":    services.TasinmazPageSize,
	}, "Taşınmaz listesi getirildi")
}

// Create ekleme formunu işler
func (h *TasinmazHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	var form models.TasinmazForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	// Kayıt sahibi oturumdaki kullanıcıdır
	if form.UserID == 0 {
		if id, err := strconv.Atoi(sess.UserID()); err == nil {
			form.UserID = id
		}
	}

	if err := h.tasinmazService.Add(r.Context(), sess, &form); err != nil {
		if verr, ok := err.(*models.ValidationError); ok {
			writeValidationError(w, verr, form.Touched)
			return
		}
		writeError(w, http.StatusBadGateway, "Taşınmaz eklenirken bir hata oluştu.")
		return
	}

	writeJSON(w, http.StatusCreated, nil, "Taşınmaz başarıyla eklendi.")
}

// Update düzenleme modalının kaydetme sonucunu işler
func (h *TasinmazHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz taşınmaz ID")
		return
	}

	var form models.TasinmazForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	// Log açıklaması için güncelleme öncesi kaydı çek; bulunamazsa boş geçilir
	original, ferr := h.tasinmazService.Find(r.Context(), sess, id)
	if ferr != nil {
		log.Warn().Err(ferr).Int("tasinmaz_id", id).Msg("Mevcut kayıt okunamadı")
	}

	if err := h.tasinmazService.Update(r.Context(), sess, id, &form, original); err != nil {
		if verr, ok := err.(*models.ValidationError); ok {
			writeValidationError(w, verr, form.Touched)
			return
		}
		writeError(w, http.StatusBadGateway, "Güncelleme sırasında bir hata oluştu.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"outcome": models.EditSaved,
	}, "Taşınmaz başarıyla güncellendi.")
}

// BulkDelete seçili taşınmazları siler
func (h *TasinmazHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	var req struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "Lütfen silinecek öğe seçin.")
		return
	}

	items, failed := h.tasinmazService.BulkDelete(r.Context(), sess, req.IDs)

	message := "Seçili taşınmazlar başarıyla silindi."
	if len(failed) > 0 {
		message = "Bazı taşınmazlar silinemedi."
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":     items,
		"failedIds": failed,
		"outcome":   models.EditDeleted,
	}, message)
}

// Export seçili satırları Excel dosyası olarak indirir
func (h *TasinmazHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	var req struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "Lütfen export edilecek öğeleri seçin.")
		return
	}

	items, err := h.tasinmazService.List(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Taşınmazlar yüklenirken bir hata oluştu")
		return
	}

	selection := listview.NewSelection()
	selection.SetAll(req.IDs, true)
	selected := make([]models.Tasinmaz, 0, len(req.IDs))
	for _, item := range items {
		if selection.Has(item.ID) {
			selected = append(selected, item)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="Tasinmaz.xlsx"`)
	if err := export.Tasinmazlar(w, selected); err != nil {
		log.Error().Err(err).Msg("Excel export hatası")
	}
}

// parsePage sayfa numarasını okur; geçersiz değer 0'a düşer
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// writeValidationError alan hatalarını ve touched işaretlerini döner;
// geçersiz form ağa hiç çıkmadan burada durur
func writeValidationError(w http.ResponseWriter, verr *models.ValidationError, touched map[string]bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   "Formunuz geçerli değil. Lütfen gerekli alanları doldurun.",
		"fields":  verr.Fields,
		"touched": touched,
	})
}
