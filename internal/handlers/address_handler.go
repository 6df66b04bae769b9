package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/middleware"
	"github.com/onerilhan/tasinmaz-panel/internal/services"
)

// AddressHandler il/ilçe/mahalle dropdown'larını besleyen endpoint'leri
// yönetir. Kademeli seçim sunucu tarafında AddressCascade ile yürütülür:
// her istek seçim zincirini baştan oynatır, böylece bağımlı alt seçimlerin
// sıfırlanması tek yerde kalır.
type AddressHandler struct {
	gateway interfaces.AddressGatewayInterface
}

// NewAddressHandler yeni handler oluşturur
func NewAddressHandler(gateway interfaces.AddressGatewayInterface) *AddressHandler {
	return &AddressHandler{gateway: gateway}
}

// Cities il listesini döner (form açılışı)
func (h *AddressHandler) Cities(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	cascade := services.NewAddressCascade(h.gateway, sess.Token())
	if err := cascade.LoadCities(r.Context()); err != nil {
		log.Error().Err(err).Msg("İller yüklenemedi")
		writeError(w, http.StatusBadGateway, "İller yüklenirken bir hata oluştu")
		return
	}

	writeJSON(w, http.StatusOK, cascade.Cities(), "İl listesi getirildi")
}

// Districts seçilen ilin ilçelerini döner. İl değiştiğinde istemcideki ilçe
// ve mahalle seçimleri bu yanıtla birlikte sıfırlanır.
func (h *AddressHandler) Districts(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	cityID, err := strconv.Atoi(mux.Vars(r)["cityId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz il ID")
		return
	}

	cascade := services.NewAddressCascade(h.gateway, sess.Token())
	if err := cascade.SelectCity(r.Context(), cityID); err != nil {
		log.Error().Err(err).Int("city_id", cityID).Msg("İlçeler yüklenemedi")
		writeError(w, http.StatusBadGateway, "İlçeler yüklenirken bir hata oluştu")
		return
	}

	writeJSON(w, http.StatusOK, cascade.Districts(), "İlçe listesi getirildi")
}

// Neighborhoods seçilen ilçenin mahallelerini döner. cityId zinciri baştan
// oynatmak için gereklidir; ilçe ile uyumsuzsa boş liste döner.
func (h *AddressHandler) Neighborhoods(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)

	vars := mux.Vars(r)
	cityID, err := strconv.Atoi(vars["cityId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz il ID")
		return
	}
	districtID, err := strconv.Atoi(vars["districtId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz ilçe ID")
		return
	}

	cascade := services.NewAddressCascade(h.gateway, sess.Token())
	if err := cascade.SelectCity(r.Context(), cityID); err != nil {
		writeError(w, http.StatusBadGateway, "İlçeler yüklenirken bir hata oluştu")
		return
	}
	if err := cascade.SelectDistrict(r.Context(), districtID); err != nil {
		log.Error().Err(err).Int("district_id", districtID).Msg("Mahalleler yüklenemedi")
		writeError(w, http.StatusBadGateway, "Mahalleler yüklenirken bir hata oluştu")
		return
	}

	writeJSON(w, http.StatusOK, cascade.Neighborhoods(), "Mahalle listesi getirildi")
}
