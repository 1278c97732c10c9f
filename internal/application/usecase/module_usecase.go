package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// ModuleUseCase registra toggles de módulos por empresa.
type ModuleUseCase struct {
	store repository.DocumentStore
}

// NewModuleUseCase construye el caso de uso con el puerto de persistencia.
func NewModuleUseCase(store repository.DocumentStore) *ModuleUseCase {
	return &ModuleUseCase{store: store}
}

// Toggle inserta un evento nuevo de módulo. Nunca actualiza un documento
// existente: dos toggles del mismo módulo dejan dos eventos en la colección.
// Toggles concurrentes son seguros por ser appends independientes.
func (uc *ModuleUseCase) Toggle(ctx context.Context, in dto.ToggleModuleRequest) (*dto.CreatedResponse, error) {
	if in.Enabled == nil {
		return nil, fmt.Errorf("%w: enabled es requerido", domain.ErrValidation)
	}
	event := &entity.ModuleEvent{
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Enabled:   *in.Enabled,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	id, err := uc.store.CreateDocument(ctx, repository.CollectionModule, event)
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Module updated"}, nil
}
