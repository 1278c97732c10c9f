package http

import "github.com/tu-usuario/mini-erp/internal/domain/entity"

// Permission identifica una operación protegida de la API.
type Permission string

// Operaciones protegidas.
const (
	PermCompanyCreate Permission = "company:create"
	PermCompanyList   Permission = "company:list"
	PermModuleToggle  Permission = "module:toggle"
	PermUserCreate    Permission = "user:create"
	PermUserIssueKey  Permission = "user:issue-key"
)

// rolePolicy tabla central operación → roles permitidos. Es el único lugar
// donde vive la política de autorización, auditable sin pasar por el router.
var rolePolicy = map[Permission][]string{
	PermCompanyCreate: {entity.RoleAdmin},
	PermCompanyList:   {entity.RoleAdmin, entity.RoleManager},
	PermModuleToggle:  {entity.RoleAdmin, entity.RoleManager},
	PermUserCreate:    {entity.RoleAdmin},
	PermUserIssueKey:  {entity.RoleAdmin},
}

// AllowedRoles devuelve los roles permitidos para la operación.
func AllowedRoles(p Permission) []string {
	roles := rolePolicy[p]
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}
