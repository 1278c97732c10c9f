package entity

import (
	"fmt"

	"github.com/tu-usuario/mini-erp/internal/domain"
)

// Company representa una organización/tenant del sistema.
// Inmutable una vez creada: no hay endpoints de update ni delete.
// Industry y Country son punteros para que el documento persista null cuando no vienen.
type Company struct {
	Name     string   `bson:"name" json:"name" validate:"required,min=1"`
	Industry *string  `bson:"industry" json:"industry"`
	Country  *string  `bson:"country" json:"country"`
	Modules  []string `bson:"modules" json:"modules"`
}

// Validate verifica los campos requeridos antes de persistir.
func (c *Company) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	return nil
}

// Normalize aplica los valores por defecto (modules nunca es null en el documento).
func (c *Company) Normalize() {
	if c.Modules == nil {
		c.Modules = []string{}
	}
}
