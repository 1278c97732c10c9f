package entity

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/mini-erp/internal/domain"
)

// Roles válidos para Account.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// Account representa una cuenta de usuario del sistema con su credencial.
// El api_key es un bearer credential permanente almacenado en texto plano;
// se invalida únicamente al reemitirlo (el write reemplaza al anterior).
// La unicidad del email NO se garantiza (limitación asumida del modelo).
type Account struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required,min=1"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Role      string             `bson:"role" json:"role"`
	CompanyID *string            `bson:"company_id" json:"company_id"`
	APIKey    string             `bson:"api_key" json:"-"`
}

// Validate verifica los campos requeridos antes de persistir.
func (a *Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if a.Email == "" {
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	return nil
}

// Normalize aplica los valores por defecto.
func (a *Account) Normalize() {
	if a.Role == "" {
		a.Role = RoleViewer
	}
}
