package models

import "strings"

// Tasinmaz taşınmaz kaydını temsil eder
type Tasinmaz struct {
	ID                    int           `json:"id"`
	NeighborhoodID        int           `json:"neigborhoodId"`
	UserID                int           `json:"userId"`
	Island                string        `json:"island"`
	Parcel                string        `json:"parcel"`
	Quality               string        `json:"quality"`
	CoordinateInformation string        `json:"coordinateInformation"`
	Neighborhood          *Neighborhood `json:"neigborhood,omitempty"`
}

// CityName görüntüleme için il adını döner, hiyerarşi eksikse boş string
func (t *Tasinmaz) CityName() string {
	if t.Neighborhood != nil && t.Neighborhood.District != nil && t.Neighborhood.District.City != nil {
		return t.Neighborhood.District.City.Name
	}
	return ""
}

// DistrictName görüntüleme için ilçe adını döner
func (t *Tasinmaz) DistrictName() string {
	if t.Neighborhood != nil && t.Neighborhood.District != nil {
		return t.Neighborhood.District.DistrictName
	}
	return ""
}

// NeighborhoodName görüntüleme için mahalle adını döner
func (t *Tasinmaz) NeighborhoodName() string {
	if t.Neighborhood != nil {
		return t.Neighborhood.NeighborhoodName
	}
	return ""
}

// TasinmazForm taşınmaz ekleme/düzenleme formu
type TasinmazForm struct {
	City           int    `json:"city"`
	District       int    `json:"district"`
	NeighborhoodID int    `json:"neighborhoodId"`
	Island         string `json:"island"`
	Parcel         string `json:"parcel"`
	Quality        string `json:"quality"`
	Coordinates    string `json:"coordinates"`
	UserID         int    `json:"userId"`

	// Touched validasyon sonrası işaretlenen alanları tutar
	Touched map[string]bool `json:"-"`
}

// Validate formu kontrol eder; geçersizse tüm alanları touched işaretler ve
// alan bazlı hataları döner. Ada/parsel/nitelik/koordinat opsiyoneldir.
func (f *TasinmazForm) Validate() *ValidationError {
	errs := map[string]string{}

	if f.City == 0 {
		errs["city"] = "İl seçimi zorunludur"
	}
	if f.District == 0 {
		errs["district"] = "İlçe seçimi zorunludur"
	}
	if f.NeighborhoodID == 0 {
		errs["neighborhoodId"] = "Mahalle seçimi zorunludur"
	}

	if len(errs) > 0 {
		f.markAllTouched()
		return &ValidationError{Fields: errs}
	}
	return nil
}

func (f *TasinmazForm) markAllTouched() {
	f.Touched = map[string]bool{}
	for _, name := range []string{"city", "district", "neighborhoodId", "island", "parcel", "quality", "coordinates", "userId"} {
		f.Touched[name] = true
	}
}

// ToTasinmaz form verisinden backend'e gönderilecek kaydı üretir
func (f *TasinmazForm) ToTasinmaz() *Tasinmaz {
	return &Tasinmaz{
		NeighborhoodID:        f.NeighborhoodID,
		UserID:                f.UserID,
		Island:                f.Island,
		Parcel:                f.Parcel,
		Quality:               f.Quality,
		CoordinateInformation: f.Coordinates,
	}
}

// EditOutcome düzenleme modalının kapanış sonucudur; çağıran hangi dalın
// gerçekleştiğini string karşılaştırmadan ayırt eder
type EditOutcome string

const (
	EditSaved     EditOutcome = "saved"
	EditDeleted   EditOutcome = "deleted"
	EditCancelled EditOutcome = "cancelled"
)

// ValidationError alan bazlı form hatalarını taşır
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		parts = append(parts, msg)
	}
	return strings.Join(parts, ", ")
}
