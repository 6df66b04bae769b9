package interfaces

import (
	"context"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// AuthGatewayInterface Auth endpoint sözleşmesi (test'lerde mock'lanır)
type AuthGatewayInterface interface {
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	Register(ctx context.Context, token string, user *models.User) error
}

// AddressGatewayInterface adres hiyerarşisi sözleşmesi
type AddressGatewayInterface interface {
	Cities(ctx context.Context, token string) ([]models.City, error)
	DistrictsByCity(ctx context.Context, token string, cityID int) ([]models.District, error)
	NeighborhoodsByDistrict(ctx context.Context, token string, districtID int) ([]models.Neighborhood, error)
}

// TasinmazGatewayInterface taşınmaz sözleşmesi
type TasinmazGatewayInterface interface {
	All(ctx context.Context, token string) ([]models.Tasinmaz, error)
	ByUser(ctx context.Context, token, userID string) ([]models.Tasinmaz, error)
	ByID(ctx context.Context, token string, id int) (*models.Tasinmaz, error)
	Create(ctx context.Context, token string, item *models.Tasinmaz) error
	Update(ctx context.Context, token string, id int, item *models.Tasinmaz) error
	Delete(ctx context.Context, token string, id int) error
}

// UserGatewayInterface kullanıcı sözleşmesi
type UserGatewayInterface interface {
	All(ctx context.Context, token string) ([]models.User, error)
	ByID(ctx context.Context, token string, id int) (*models.User, error)
	Create(ctx context.Context, token string, user *models.User) error
	Update(ctx context.Context, token string, id int, user *models.User) error
	Delete(ctx context.Context, token string, id int) error
}

// LogGatewayInterface log sözleşmesi
type LogGatewayInterface interface {
	All(ctx context.Context, token string) ([]models.LogEntry, error)
	Add(ctx context.Context, token string, entry *models.LogEntry) error
}

// AuditRecorderInterface servislerin kullandığı denetim kaydı sözleşmesi
type AuditRecorderInterface interface {
	Record(token string, actorID int, actorRole, durum, islemTip, aciklama string)
}
