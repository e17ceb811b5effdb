package dto

import "time"

// PasswordMask valor que sustituye al hash en todas las respuestas.
const PasswordMask = "*****"

// CompanyRoleResource par (rol, empresa) en el formato de la API.
type CompanyRoleResource struct {
	Role        string `json:"role"`
	CompanyCode string `json:"companyCode"`
}

// UserResource representación pública de un usuario. En la entrada Password trae el texto plano;
// en la salida es PasswordMask o null.
type UserResource struct {
	ID                      string                `json:"id,omitempty"`
	Username                string                `json:"username"`
	Password                *string               `json:"password"`
	FirstName               string                `json:"firstName"`
	MiddleName              *string               `json:"middleName"`
	LastName                string                `json:"lastName"`
	Email                   string                `json:"email"`
	FailedLoginAttempts     int                   `json:"failedLoginAttempts"`
	Roles                   []CompanyRoleResource `json:"roles"`
	RegistrationTime        *time.Time            `json:"registrationTime"`
	LastModificationTime    *time.Time            `json:"lastModificationTime"`
	PasswordExpiringEnabled bool                  `json:"passwordExpiringEnabled"`
	PasswordExpiryTime      *time.Time            `json:"passwordExpiryTime"`
	AccountExpiryTime       *time.Time            `json:"accountExpiryTime"`
	ActivationKey           *string               `json:"activationKey"`
	ActivatedTime           *time.Time            `json:"activatedTime"`
	AccountLocked           bool                  `json:"accountLocked"`
	Enabled                 bool                  `json:"enabled"`
	Version                 int64                 `json:"version"`
}
