package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// Log listesi sayfa boyutu
const LogPageSize = 10

// LogService denetim kayıtlarının liste görünümünü besler (yalnızca admin)
type LogService struct {
	gateway interfaces.LogGatewayInterface
}

// NewLogService yeni servis oluşturur
func NewLogService(gateway interfaces.LogGatewayInterface) *LogService {
	return &LogService{gateway: gateway}
}

// List tüm logları getirir, tarihe göre azalan sıralar (en yeni önce)
func (s *LogService) List(ctx context.Context, sess *session.Store) ([]models.LogEntry, error) {
	entries, err := s.gateway.All(ctx, sess.Token())
	if err != nil {
		return nil, fmt.Errorf("loglar yüklenemedi: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TarihveSaat.After(entries[j].TarihveSaat)
	})
	return entries, nil
}

// LogSearchFields arama filtresinin baktığı alanları döner
func LogSearchFields(e models.LogEntry) []string {
	return []string{
		fmt.Sprintf("%d", e.ID),
		fmt.Sprintf("%d", e.KullaniciID),
		e.Durum,
		e.IslemTip,
		e.Aciklama,
		e.KullaniciTip,
	}
}

// LogFilter log listesinin kriter filtresidir; boş alan o kriteri atlar.
// Tarih dd/MM/yyyy HH:mm biçiminde karşılaştırılır.
type LogFilter struct {
	Durum    string
	IslemTip string
	Tarih    string
}

// ApplyLogFilter kriterleri VE mantığıyla uygular
func ApplyLogFilter(entries []models.LogEntry, f LogFilter) []models.LogEntry {
	filtered := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		if f.Durum != "" && e.Durum != f.Durum {
			continue
		}
		if f.IslemTip != "" && e.IslemTip != f.IslemTip {
			continue
		}
		if f.Tarih != "" && e.TarihveSaat.Format(models.LogTarihFormati) != f.Tarih {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// FindLog id ile cache'lenmiş listeden kaydı bulur (detay görünümü)
func FindLog(entries []models.LogEntry, id int) (*models.LogEntry, bool) {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], true
		}
	}
	return nil, false
}
