package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/audit"
	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
	"github.com/onerilhan/tasinmaz-panel/internal/session"
)

// Taşınmaz listesi sayfa boyutu
const TasinmazPageSize = 5

// TasinmazService taşınmaz akışlarını yönetir: role göre kapsamlı listeleme,
// ekleme/düzenleme/silme ve her mutasyon sonrası denetim logu.
type TasinmazService struct {
	gateway interfaces.TasinmazGatewayInterface
	audit   interfaces.AuditRecorderInterface
}

// NewTasinmazService yeni servis oluşturur
func NewTasinmazService(gateway interfaces.TasinmazGatewayInterface, audit interfaces.AuditRecorderInterface) *TasinmazService {
	return &TasinmazService{gateway: gateway, audit: audit}
}

// List koleksiyonu bir kez çeker: admin tüm kayıtları, diğer kullanıcılar
// yalnızca kendi kayıtlarını görür. Sonuç id'ye göre artan sıralıdır.
func (s *TasinmazService) List(ctx context.Context, sess *session.Store) ([]models.Tasinmaz, error) {
	var (
		items []models.Tasinmaz
		err   error
	)

	if sess.IsAdmin() {
		items, err = s.gateway.All(ctx, sess.Token())
	} else {
		userID := sess.UserID()
		if userID == "" {
			return nil, fmt.Errorf("kullanıcı ID bulunamadı")
		}
		items, err = s.gateway.ByUser(ctx, sess.Token(), userID)
	}
	if err != nil {
		return nil, fmt.Errorf("taşınmazlar yüklenemedi: %w", err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Find tek taşınmaz detayını getirir
func (s *TasinmazService) Find(ctx context.Context, sess *session.Store, id int) (*models.Tasinmaz, error) {
	item, err := s.gateway.ByID(ctx, sess.Token(), id)
	if err != nil {
		return nil, fmt.Errorf("taşınmaz detayı yüklenemedi: %w", err)
	}
	return item, nil
}

// SearchFields arama filtresinin baktığı görüntü alanlarını döner
func SearchFields(t models.Tasinmaz) []string {
	return []string{
		t.CityName(),
		t.DistrictName(),
		t.NeighborhoodName(),
		t.Island,
		t.Parcel,
		t.Quality,
		t.CoordinateInformation,
		fmt.Sprintf("%d", t.UserID),
	}
}

// Add form verisini doğrular ve kaydı oluşturur. Geçersiz form ağa çıkmadan
// reddedilir; başarı/başarısızlık denetim loguna yazılır.
func (s *TasinmazService) Add(ctx context.Context, sess *session.Store, form *models.TasinmazForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	item := form.ToTasinmaz()
	actorID := actorIDOf(sess)

	if err := s.gateway.Create(ctx, sess.Token(), item); err != nil {
		log.Error().Err(err).Msg("Taşınmaz eklenemedi")
		s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarisiz, models.IslemTasinmazEkleme,
			fmt.Sprintf("Taşınmaz eklenirken hata oluştu: %s", err.Error()))
		return fmt.Errorf("taşınmaz eklenirken bir hata oluştu")
	}

	s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarili, models.IslemTasinmazEkleme,
		fmt.Sprintf("Taşınmaz başarıyla eklendi. Detaylar: %s", audit.DescribeTasinmaz(*item)))

	log.Info().Int("user_id", item.UserID).Msg("Taşınmaz eklendi")
	return nil
}

// Update düzenleme modalından gelen kaydı günceller. Log açıklaması
// güncelleme ÖNCESİ kaydın dökümünü içerir.
func (s *TasinmazService) Update(ctx context.Context, sess *session.Store, id int, form *models.TasinmazForm, original *models.Tasinmaz) error {
	if err := form.Validate(); err != nil {
		return err
	}

	item := form.ToTasinmaz()
	item.ID = id
	actorID := actorIDOf(sess)

	detay := ""
	if original != nil {
		detay = audit.DescribeTasinmaz(*original)
	}

	if err := s.gateway.Update(ctx, sess.Token(), id, item); err != nil {
		log.Error().Err(err).Int("tasinmaz_id", id).Msg("Güncelleme hatası")
		s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarisiz, models.IslemTasinmazDuzenleme,
			fmt.Sprintf("Taşınmaz (ID: %d, Detaylar: %s) güncellenirken hata oluştu: %s", id, detay, err.Error()))
		return fmt.Errorf("güncelleme sırasında bir hata oluştu")
	}

	s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarili, models.IslemTasinmazDuzenleme,
		fmt.Sprintf("Taşınmaz (ID: %d, Detaylar: %s) başarıyla güncellendi.", id, detay))

	log.Info().Int("tasinmaz_id", id).Msg("Taşınmaz güncellendi")
	return nil
}

// BulkDelete seçili id'leri sırayla siler. Bir silmenin hatası kalanları
// durdurmaz; hatalar toplanır. Tüm çağrılar bittikten sonra liste tam olarak
// bir kez tazelenir ve her sonuç ayrı denetim kaydı üretir.
func (s *TasinmazService) BulkDelete(ctx context.Context, sess *session.Store, ids []int) ([]models.Tasinmaz, []int) {
	actorID := actorIDOf(sess)
	var failed []int

	for _, id := range ids {
		if err := s.gateway.Delete(ctx, sess.Token(), id); err != nil {
			log.Error().Err(err).Int("tasinmaz_id", id).Msg("Taşınmaz silinirken hata oluştu")
			failed = append(failed, id)
			s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarisiz, models.IslemTasinmazSilme,
				fmt.Sprintf("Taşınmaz (ID: %d) silinirken hata oluştu: %s", id, err.Error()))
			continue
		}
		s.audit.Record(sess.Token(), actorID, sess.Role(), models.DurumBasarili, models.IslemTasinmazSilme,
			fmt.Sprintf("Taşınmaz (ID: %d) başarıyla silindi.", id))
	}

	// Tek liste tazelemesi; silme hataları tazelemeyi engellemez
	items, err := s.List(ctx, sess)
	if err != nil {
		log.Error().Err(err).Msg("Silme sonrası liste tazelenemedi")
		return nil, failed
	}
	return items, failed
}
