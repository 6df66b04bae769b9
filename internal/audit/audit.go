package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// Recorder denetim kayıtlarını arka planda yazar. Her mutasyon sonrası
// ikincil etki olarak çağrılır; yazma hatası yalnızca loglanır, asıl işlemi
// asla bloklamaz veya geri almaz.
type Recorder struct {
	logs    interfaces.LogGatewayInterface
	timeout time.Duration
	wg      sync.WaitGroup
}

var _ interfaces.AuditRecorderInterface = (*Recorder)(nil)

// NewRecorder yeni recorder oluşturur
func NewRecorder(logs interfaces.LogGatewayInterface) *Recorder {
	return &Recorder{
		logs:    logs,
		timeout: 10 * time.Second,
	}
}

// Record log kaydını fire-and-forget yazar. Asıl işlemin sonucu bu çağrının
// sonucundan bağımsızdır.
func (r *Recorder) Record(token string, actorID int, actorRole, durum, islemTip, aciklama string) {
	if actorRole == "" {
		actorRole = models.KullaniciTipBilinmiyor
	}

	entry := &models.LogEntry{
		KullaniciID:  actorID,
		Durum:        durum,
		IslemTip:     islemTip,
		Aciklama:     aciklama,
		TarihveSaat:  time.Now(),
		KullaniciTip: actorRole,
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.logs.Add(ctx, token, entry); err != nil {
			log.Error().
				Err(err).
				Str("islem_tip", islemTip).
				Str("durum", durum).
				Msg("Log kaydedilirken hata oluştu")
			return
		}
		log.Debug().Str("islem_tip", islemTip).Msg("Log kaydedildi")
	}()
}

// Wait bekleyen log yazmalarının bitmesini bekler (graceful shutdown).
// Context dolarsa beklemeyi bırakır.
func (r *Recorder) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DescribeUser kullanıcı kaydını hassas alanlar temizlenmiş JSON olarak döner.
// passwordHash ve passwordSalt hiçbir açıklamada yer almaz.
func DescribeUser(u models.User) string {
	payload, err := json.Marshal(u.Sanitized())
	if err != nil {
		return ""
	}
	return string(payload)
}

// DescribeTasinmaz taşınmaz kaydını JSON olarak döner
func DescribeTasinmaz(t models.Tasinmaz) string {
	payload, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return string(payload)
}
