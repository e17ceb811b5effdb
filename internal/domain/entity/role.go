package entity

// Role tipo de rol asignable a un usuario dentro de una empresa.
type Role string

// Roles válidos.
const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// SystemCompanyCode pseudo-empresa a la que se asocia SUPERADMIN.
const SystemCompanyCode = "system"

// Valid informa si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// CompanyRole par (rol, código de empresa). Es un valor: se compara por ambos campos.
type CompanyRole struct {
	Role        Role
	CompanyCode string
}

// SuperAdminRole devuelve el rol SUPERADMIN sobre la pseudo-empresa "system".
func SuperAdminRole() CompanyRole {
	return CompanyRole{Role: RoleSuperAdmin, CompanyCode: SystemCompanyCode}
}

// AdminOf devuelve el rol ADMIN sobre la empresa indicada.
func AdminOf(companyCode string) CompanyRole {
	return CompanyRole{Role: RoleAdmin, CompanyCode: companyCode}
}

// HasRole informa si roles contiene el par (rol, empresa).
func HasRole(roles []CompanyRole, role CompanyRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole devuelve una lista nueva con role al final, salvo que el par ya exista,
// en cuyo caso devuelve una copia sin cambios. Nunca modifica roles.
func AddRole(roles []CompanyRole, role CompanyRole) []CompanyRole {
	out := make([]CompanyRole, len(roles), len(roles)+1)
	copy(out, roles)
	if HasRole(roles, role) {
		return out
	}
	return append(out, role)
}

// NormalizeRoles aplica AddRole en orden sobre una lista que puede traer duplicados.
func NormalizeRoles(roles []CompanyRole) []CompanyRole {
	out := make([]CompanyRole, 0, len(roles))
	for _, r := range roles {
		out = AddRole(out, r)
	}
	return out
}
