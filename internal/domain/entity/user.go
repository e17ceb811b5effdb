package entity

import "time"

// User representa un usuario del sistema. Puede administrar varias empresas vía Roles.
type User struct {
	ID                      string
	Username                string
	PasswordHash            string // hash bcrypt, nunca texto plano después de provisionar
	FirstName               string
	MiddleName              *string
	LastName                string
	Email                   string
	FailedLoginAttempts     int
	Enabled                 bool
	AccountLocked           bool
	PasswordExpiringEnabled bool
	RegistrationTime        *time.Time
	LastModificationTime    *time.Time
	ActivatedTime           *time.Time
	PasswordExpiryTime      *time.Time
	AccountExpiryTime       *time.Time
	ActivationKey           *string // presente mientras la activación está pendiente
	Roles                   []CompanyRole
	Version                 int64
}

// IsPersisted informa si el almacén ya asignó un ID.
func (u *User) IsPersisted() bool {
	return u.ID != ""
}

// WithRole devuelve una copia del usuario con role añadido (ver AddRole).
// La lista de roles del receptor no se comparte con la copia.
func (u User) WithRole(role CompanyRole) User {
	u.Roles = AddRole(u.Roles, role)
	return u
}

// Activate habilita y desbloquea la cuenta, borrando la clave de activación.
func (u *User) Activate(now time.Time) {
	u.ActivationKey = nil
	u.Enabled = true
	u.AccountLocked = false
	u.ActivatedTime = &now
	u.LastModificationTime = &now
}
