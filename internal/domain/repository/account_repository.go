package repository

import (
	"context"

	"github.com/tu-usuario/mini-erp/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) (string, error)
	// FindByAPIKey busca exactamente una cuenta cuyo api_key sea igual a key.
	FindByAPIKey(ctx context.Context, key string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// UpdateAPIKey sobrescribe la llave de la cuenta; la anterior queda inválida de inmediato.
	UpdateAPIKey(ctx context.Context, id string, key string) error
}
