package entity

import (
	"fmt"

	"github.com/tu-usuario/mini-erp/internal/domain"
)

// ModuleEvent registra la activación o desactivación de un módulo en una empresa.
// Cada toggle inserta un documento nuevo: la colección es un log append-only de
// eventos, no el estado vigente del módulo. Dos toggles del mismo módulo
// producen dos documentos recuperables.
type ModuleEvent struct {
	CompanyID string `bson:"company_id" json:"company_id" validate:"required"`
	Name      string `bson:"name" json:"name" validate:"required,min=1"`
	Enabled   bool   `bson:"enabled" json:"enabled"`
}

// Validate verifica los campos requeridos. CompanyID no se valida como FK:
// se espera que referencie una Company, pero el sistema no lo comprueba.
func (m *ModuleEvent) Validate() error {
	if m.CompanyID == "" {
		return fmt.Errorf("%w: company_id es requerido", domain.ErrValidation)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	return nil
}
