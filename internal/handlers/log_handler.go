package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/export"
	"github.com/onerilhan/tasinmaz-panel/internal/listview"
	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
)

// LogHandler denetim logu endpoint'lerini yönetir; yalnızca admin erişir
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler yeni handler oluşturur
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// List log listesini döner. Serbest metin araması ve kriter filtresi (durum,
// işlem tipi, tarih) birlikte uygulanır; sayfalama lokaldir.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	entries, err := h.logService.List(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("Loglar yüklenirken bir hata oluştu")
		writeError(w, http.StatusBadGateway, "Loglar yüklenirken bir hata oluştu. Lütfen daha sonra tekrar deneyin.")
		return
	}

	query := r.URL.Query()
	filter := services.LogFilter{
		Durum:    query.Get("durum"),
		IslemTip: query.Get("islemTip"),
		Tarih:    query.Get("tarih"),
	}

	filtered := services.ApplyLogFilter(entries, filter)
	filtered = listview.Filter(filtered, query.Get("search"), services.LogSearchFields)

	page := parsePage(r)
	pageItems := listview.Page(filtered, page, services.LogPageSize)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":       pageItems,
		"totalCount":  len(filtered),
		"totalPages":  listview.TotalPages(len(filtered), services.LogPageSize),
		"currentPage": page,
		"pageSize":    services.LogPageSize,
	}, "Log listesi getirildi")
}

// Detail tek log kaydını döner (detay modalı)
func (h *LogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz log ID")
		return
	}

	entries, err := h.logService.List(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Loglar yüklenirken bir hata oluştu.")
		return
	}

	entry, ok := services.FindLog(entries, id)
	if !ok {
		writeError(w, http.StatusNotFound, "Log kaydı bulunamadı")
		return
	}

	writeJSON(w, http.StatusOK, entry, "Log detayı getirildi")
}

// Export filtrelenmiş log listesini Excel dosyası olarak indirir. Arama ve
// kriter filtresi liste görünümüyle aynı şekilde uygulanır; sayfalama yoktur.
func (h *LogHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	entries, err := h.logService.List(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Loglar yüklenirken bir hata oluştu.")
		return
	}

	query := r.URL.Query()
	filter := services.LogFilter{
		Durum:    query.Get("durum"),
		IslemTip: query.Get("islemTip"),
		Tarih:    query.Get("tarih"),
	}

	filtered := services.ApplyLogFilter(entries, filter)
	filtered = listview.Filter(filtered, query.Get("search"), services.LogSearchFields)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="Loglar.xlsx"`)
	if err := export.Logs(w, filtered); err != nil {
		log.Error().Err(err).Msg("Excel export hatası")
	}
}
