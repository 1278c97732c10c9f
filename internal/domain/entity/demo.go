package entity

import (
	"fmt"

	"github.com/tu-usuario/mini-erp/internal/domain"
)

// User y Product son los schemas de ejemplo del proyecto. Siguen registrados en
// la tabla de colecciones para el visor de la base, pero ningún endpoint de
// negocio los usa.

// User schema de ejemplo (colección "user").
type User struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Email    string `bson:"email" json:"email" validate:"required,email"`
	Address  string `bson:"address" json:"address" validate:"required"`
	Age      *int   `bson:"age" json:"age" validate:"omitempty,min=0,max=120"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}

// Validate verifica campos requeridos y el rango de edad [0,120].
func (u *User) Validate() error {
	if u.Name == "" || u.Email == "" || u.Address == "" {
		return fmt.Errorf("%w: name, email y address son requeridos", domain.ErrValidation)
	}
	if u.Age != nil && (*u.Age < 0 || *u.Age > 120) {
		return fmt.Errorf("%w: age debe estar entre 0 y 120", domain.ErrValidation)
	}
	return nil
}

// Product schema de ejemplo (colección "product").
type Product struct {
	Title       string  `bson:"title" json:"title" validate:"required"`
	Description *string `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price" validate:"min=0"`
	Category    string  `bson:"category" json:"category" validate:"required"`
	InStock     bool    `bson:"in_stock" json:"in_stock"`
}

// Validate verifica campos requeridos y que price no sea negativo.
func (p *Product) Validate() error {
	if p.Title == "" || p.Category == "" {
		return fmt.Errorf("%w: title y category son requeridos", domain.ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	return nil
}
