package auth

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// AuthContext identidad resuelta del caller, adjunta a la petición autorizada.
type AuthContext struct {
	UserID    string
	Email     string
	Role      string
	CompanyID string
}

// HasRole informa si el rol del caller pertenece al conjunto permitido.
func (a *AuthContext) HasRole(allowed ...string) bool {
	for _, r := range allowed {
		if a.Role == r {
			return true
		}
	}
	return false
}

// AuthUseCase resuelve una API key opaca a la identidad del caller.
// No hay sesiones ni expiración: la llave es válida hasta que se reemite.
type AuthUseCase struct {
	accounts repository.AccountRepository
}

// NewAuthUseCase construye el gate de autenticación.
func NewAuthUseCase(accounts repository.AccountRepository) *AuthUseCase {
	return &AuthUseCase{accounts: accounts}
}

// Authenticate busca exactamente una cuenta cuyo api_key sea igual a la llave.
//   - llave vacía           → domain.ErrUnauthenticated (credencial ausente)
//   - sin cuenta que calce  → domain.ErrUnauthenticated (credencial inválida)
//   - coincidencia          → AuthContext del caller
//
// Los errores de infraestructura del store se propagan tal cual (no son 401).
func (uc *AuthUseCase) Authenticate(ctx context.Context, apiKey string) (*AuthContext, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: falta la api key", domain.ErrUnauthenticated)
	}
	account, err := uc.accounts.FindByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: api key no reconocida", domain.ErrUnauthenticated)
	}
	companyID := ""
	if account.CompanyID != nil {
		companyID = *account.CompanyID
	}
	return &AuthContext{
		UserID:    account.ID.Hex(),
		Email:     account.Email,
		Role:      account.Role,
		CompanyID: companyID,
	}, nil
}
