package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/listview"
	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
)

// UserHandler kullanıcı yönetimi endpoint'lerini yönetir; router'da admin
// guard'ının arkasındadır
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler yeni handler oluşturur
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List kullanıcı listesini döner; arama ve sayfalama lokaldir
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	users, err := h.userService.List(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("Kullanıcılar yüklenirken bir hata oluştu")
		writeError(w, http.StatusBadGateway, "Kullanıcılar yüklenirken bir hata oluştu. Lütfen daha sonra tekrar deneyin.")
		return
	}

	// Hassas alanlar panel yanıtına da sızmasın
	for i := range users {
		users[i] = users[i].Sanitized()
	}

	searchTerm := r.URL.Query().Get("search")
	page := parsePage(r)

	filtered := listview.Filter(users, searchTerm, services.UserSearchFields)
	pageItems := listview.Page(filtered, page, services.UserPageSize)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":       pageItems,
		"totalCount":  len(filtered),
		"totalPages":  listview.TotalPages(len(filtered), services.UserPageSize),
		"currentPage": page,
		"pageSize":    services.UserPageSize,
	}, "Kullanıcı listesi getirildi")
}

// Create yeni kullanıcı ekler
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	if err := h.userService.Create(r.Context(), sess, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, nil, "Kullanıcı başarıyla eklendi.")
}

// Update mevcut kullanıcıyı günceller
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz kullanıcı ID")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}

	if err := h.userService.Update(r.Context(), sess, id, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, nil, "Kullanıcı başarıyla güncellendi.")
}

// BulkDelete seçili kullanıcıları siler
func (h *UserHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	var req struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON formatı")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "Silinecek kullanıcı seçilmedi.")
		return
	}

	// Log açıklamaları için kayıtları silmeden önce oku
	users, err := h.userService.List(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Kullanıcılar yüklenirken bir hata oluştu.")
		return
	}

	selection := listview.NewSelection()
	selection.SetAll(req.IDs, true)
	selected := make([]models.User, 0, len(req.IDs))
	for _, user := range users {
		if selection.Has(user.ID) {
			selected = append(selected, user)
		}
	}

	refreshed, failed := h.userService.BulkDelete(r.Context(), sess, selected)
	for i := range refreshed {
		refreshed[i] = refreshed[i].Sanitized()
	}

	message := "Seçili kullanıcılar başarıyla silindi."
	if len(failed) > 0 {
		message = "Bazı kullanıcılar silinemedi."
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":     refreshed,
		"failedIds": failed,
	}, message)
}
