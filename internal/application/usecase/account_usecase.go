package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
	"github.com/tu-usuario/mini-erp/pkg/apikey"
)

// AccountUseCase gestión de cuentas de usuario y sus credenciales.
type AccountUseCase struct {
	accounts repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de cuentas.
func NewAccountUseCase(accounts repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

// CreateUser valida, genera una api key fresca y persiste la cuenta.
// La llave se devuelve únicamente en esta respuesta; no existe otro endpoint
// que la muestre. No se verifica unicidad del email (limitación del modelo).
// El role es un string abierto: uno fuera del catálogo se persiste tal cual
// y simplemente no calza con ninguna entrada de la tabla de permisos.
func (uc *AccountUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	account := &entity.Account{
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CompanyID: in.CompanyID,
	}
	account.Normalize()
	if err := account.Validate(); err != nil {
		return nil, err
	}
	key, err := apikey.New()
	if err != nil {
		return nil, err
	}
	account.APIKey = key
	id, err := uc.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{ID: id, APIKey: key}, nil
}

// IssueKey busca la cuenta por email y le sobrescribe la llave.
// La llave anterior queda inválida de inmediato, sin período de gracia; si hay
// reemisiones concurrentes para el mismo email gana la última escritura.
func (uc *AccountUseCase) IssueKey(ctx context.Context, in dto.IssueKeyRequest) (*dto.IssueKeyResponse, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	account, err := uc.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: no existe cuenta con ese email", domain.ErrNotFound)
	}
	key, err := apikey.New()
	if err != nil {
		return nil, err
	}
	if err := uc.accounts.UpdateAPIKey(ctx, account.ID.Hex(), key); err != nil {
		return nil, err
	}
	return &dto.IssueKeyResponse{APIKey: key}, nil
}
