package audit

import (
	"context"
	"fmt"
	"strings"
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
	return nil, args.Error(1)
}

func (m *MockLogGateway) Add(ctx context.Context, token string, entry *models.LogEntry) error {
	args := m.Called(ctx, token, entry)
	return args.Error(0)
}

func TestRecorder_Record_Success(t *testing.T) {
	// Arrange
	mockGateway := new(MockLogGateway)
	recorder := NewRecorder(mockGateway)

	var recorded *models.LogEntry
	mockGateway.On("Add", mock.Anything, "token", mock.AnythingOfType("*models.LogEntry")).
		Run(func(args mock.Arguments) { recorded = args.Get(2).(*models.LogEntry) }).
		Return(nil)

	// Act
	recorder.Record("token", 42, "admin", models.DurumBasarili, models.IslemLogin, "giriş yapıldı")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	recorder.Wait(ctx)

	// Assert
	assert.NotNil(t, recorded)
	assert.Equal(t, 42, recorded.KullaniciID)
	assert.Equal(t, "admin", recorded.KullaniciTip)
	assert.Equal(t, models.DurumBasarili, recorded.Durum)
	mockGateway.AssertExpectations(t)
}

// Log yazma hatası asıl işleme sızmaz; Record bloklamaz ve panic etmez
func TestRecorder_Record_FailureNeverPropagates(t *testing.T) {
	mockGateway := new(MockLogGateway)
	recorder := NewRecorder(mockGateway)

	mockGateway.On("Add", mock.Anything, "token", mock.AnythingOfType("*models.LogEntry")).Return(fmt.Errorf("backend kapalı"))

	assert.NotPanics(t, func() {
		recorder.Record("token", 1, "user", models.DurumBasarisiz, models.IslemLogout, "çıkış")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	recorder.Wait(ctx)
	mockGateway.AssertExpectations(t)
}

// Boş rol "bilinmiyor" olarak yazılır
func TestRecorder_Record_UnknownRole(t *testing.T) {
	mockGateway := new(MockLogGateway)
	recorder := NewRecorder(mockGateway)

	var recorded *models.LogEntry
	mockGateway.On("Add", mock.Anything, "", mock.AnythingOfType("*models.LogEntry")).
		Run(func(args mock.Arguments) { recorded = args.Get(2).(*models.LogEntry) }).
		Return(nil)

	recorder.Record("", 0, "", models.DurumBasarisiz, models.IslemLogin, "token alınamadı")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	recorder.Wait(ctx)

	assert.NotNil(t, recorded)
	assert.Equal(t, models.KullaniciTipBilinmiyor, recorded.KullaniciTip)
}

// Açıklama hassas alan içermez
func TestDescribeUser_ExcludesSecrets(t *testing.T) {
	user := models.User{
		ID:           1,
		Email:        "ali@example.com",
		Password:     "Password1!",
		PasswordHash: "deadbeef",
		PasswordSalt: "cafebabe",
	}

	desc := DescribeUser(user)

	assert.Contains(t, desc, "ali@example.com")
	assert.False(t, strings.Contains(desc, "deadbeef"))
	assert.False(t, strings.Contains(desc, "cafebabe"))
	assert.False(t, strings.Contains(desc, "Password1!"))
}
