package models

import "time"

// Log durum etiketleri
const (
	DurumBasarili  = "Başarılı"
	DurumBasarisiz = "Başarısız"
)

// İşlem tipleri (kapalı küme)
const (
	IslemLogin              = "Login"
	IslemLogout             = "Logout"
	IslemKullaniciEkleme    = "Kullanıcı Ekleme"
	IslemKullaniciDuzenleme = "Kullanıcı Düzenleme"
	IslemKullaniciSilme     = "Kullanıcı Silme"
	IslemTasinmazEkleme     = "Taşınmaz Ekleme"
	IslemTasinmazDuzenleme  = "Taşınmaz Düzenleme"
	IslemTasinmazSilme      = "Taşınmaz Silme"
)

// KullaniciTipBilinmiyor aktör rolü çözülemediğinde kullanılır
const KullaniciTipBilinmiyor = "bilinmiyor"

// LogTarihFormati log listesindeki tarih filtresi ve export formatı
const LogTarihFormati = "02/01/2006 15:04"

// LogEntry denetim kaydını temsil eder; istemci tarafından yalnızca
// oluşturulur ve listelenir, asla düzenlenmez
type LogEntry struct {
	ID           int       `json:"id,omitempty"`
	KullaniciID  int       `json:"kullaniciId"`
	Durum        string    `json:"durum"`
	IslemTip     string    `json:"islemTip"`
	Aciklama     string    `json:"aciklama"`
	TarihveSaat  time.Time `json:"tarihveSaat"`
	KullaniciTip string    `json:"kullaniciTip"`
}
