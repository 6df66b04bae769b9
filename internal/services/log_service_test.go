package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/onerilhan/tasinmaz-panel/internal/interfaces"
	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// MockLogGateway - test için mock gateway
type MockLogGateway struct {
	mock.Mock
}

var _ interfaces.LogGatewayInterface = (*MockLogGateway)(nil)

func (m *MockLogGateway) All(ctx context.Context, token string) ([]models.LogEntry, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LogEntry), args.Error(1)
}

func (m *MockLogGateway) Add(ctx context.Context, token string, entry *models.LogEntry) error {
	args := m.Called(ctx, token, entry)
	return args.Error(0)
}

func sampleLogs() []models.LogEntry {
	base := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	return []models.LogEntry{
		{ID: 1, Durum: models.DurumBasarili, IslemTip: models.IslemLogin, TarihveSaat: base},
		{ID: 2, Durum: models.DurumBasarisiz, IslemTip: models.IslemLogin, TarihveSaat: base.Add(time.Hour)},
		{ID: 3, Durum: models.DurumBasarili, IslemTip: models.IslemTasinmazEkleme, TarihveSaat: base.Add(2 * time.Hour)},
	}
}

// Liste en yeni kayıt önce gelecek şekilde sıralanır
func TestLogService_List_SortedNewestFirst(t *testing.T) {
	// Arrange
	mockGateway := new(MockLogGateway)
	service := NewLogService(mockGateway)
	sess := testSession(t, "1", "admin@example.com", "admin")

	mockGateway.On("All", mock.Anything, sess.Token()).Return(sampleLogs(), nil)

	// Act
	entries, err := service.List(context.Background(), sess)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 3, entries[0].ID)
	assert.Equal(t, 1, entries[2].ID)
	mockGateway.AssertExpectations(t)
}

// Kriterler VE mantığıyla uygulanır; boş kriter atlanır
func TestApplyLogFilter(t *testing.T) {
	entries := sampleLogs()

	// Tek kriter
	filtered := ApplyLogFilter(entries, LogFilter{Durum: models.DurumBasarili})
	assert.Len(t, filtered, 2)

	// İki kriter birlikte
	filtered = ApplyLogFilter(entries, LogFilter{Durum: models.DurumBasarili, IslemTip: models.IslemLogin})
	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)

	// Tarih kriteri dd/MM/yyyy HH:mm biçiminde karşılaştırılır
	filtered = ApplyLogFilter(entries, LogFilter{Tarih: "10/05/2024 15:30"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].ID)

	// Boş filtre tümünü döner
	assert.Len(t, ApplyLogFilter(entries, LogFilter{}), 3)
}

func TestFindLog(t *testing.T) {
	entries := sampleLogs()

	entry, ok := FindLog(entries, 2)
	assert.True(t, ok)
	assert.Equal(t, models.DurumBasarisiz, entry.Durum)

	_, ok = FindLog(entries, 99)
	assert.False(t, ok)
}
