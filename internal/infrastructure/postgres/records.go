package postgres

import (
	"time"

	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// Los documentos se guardan en la columna doc (JSONB); id, clave natural y versión van en columnas.

type addressRecord struct {
	PostCode   string  `json:"postCode"`
	City       string  `json:"city"`
	FirstLine  string  `json:"firstLine"`
	SecondLine *string `json:"secondLine,omitempty"`
	ThirdLine  *string `json:"thirdLine,omitempty"`
}

type companyRecord struct {
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Address              addressRecord `json:"address"`
	TaxID                *string       `json:"taxId,omitempty"`
	BankAccountNumber    *string       `json:"bankAccountNumber,omitempty"`
	OptionalContactInfo  *string       `json:"optionalContactInfo,omitempty"`
	ActivationToken      *string       `json:"activationToken,omitempty"`
	ActivationTime       *time.Time    `json:"activationTime,omitempty"`
	RegistrationTime     *time.Time    `json:"registrationTime,omitempty"`
	LastModificationTime *time.Time    `json:"lastModificationTime,omitempty"`
	Enabled              bool          `json:"enabled"`
}

type roleRecord struct {
	Role        string `json:"role"`
	CompanyCode string `json:"companyCode"`
}

type userRecord struct {
	Password                string       `json:"password"`
	FirstName               string       `json:"firstName"`
	MiddleName              *string      `json:"middleName,omitempty"`
	LastName                string       `json:"lastName"`
	Email                   string       `json:"email"`
	FailedLoginAttempts     int          `json:"failedLoginAttempts"`
	Enabled                 bool         `json:"enabled"`
	AccountLocked           bool         `json:"accountLocked"`
	PasswordExpiringEnabled bool         `json:"passwordExpiringEnabled"`
	RegistrationTime        *time.Time   `json:"registrationTime,omitempty"`
	LastModificationTime    *time.Time   `json:"lastModificationTime,omitempty"`
	ActivatedTime           *time.Time   `json:"activatedTime,omitempty"`
	PasswordExpiryTime      *time.Time   `json:"passwordExpiryTime,omitempty"`
	AccountExpiryTime       *time.Time   `json:"accountExpiryTime,omitempty"`
	ActivationKey           *string      `json:"activationKey,omitempty"`
	Roles                   []roleRecord `json:"roles"`
}

func newCompanyRecord(c *entity.Company) companyRecord {
	return companyRecord{
		Name:  c.Name,
		Email: c.Email,
		Address: addressRecord{
			PostCode:   c.Address.PostCode,
			City:       c.Address.City,
			FirstLine:  c.Address.FirstLine,
			SecondLine: c.Address.SecondLine,
			ThirdLine:  c.Address.ThirdLine,
		},
		TaxID:                c.TaxID,
		BankAccountNumber:    c.BankAccountNumber,
		OptionalContactInfo:  c.OptionalContactInfo,
		ActivationToken:      c.ActivationToken,
		ActivationTime:       c.ActivationTime,
		RegistrationTime:     c.RegistrationTime,
		LastModificationTime: c.LastModificationTime,
		Enabled:              c.Enabled,
	}
}

func (r companyRecord) toEntity(id, code string, version int64) *entity.Company {
	return &entity.Company{
		ID:    id,
		Code:  code,
		Name:  r.Name,
		Email: r.Email,
		Address: entity.Address{
			PostCode:   r.Address.PostCode,
			City:       r.Address.City,
			FirstLine:  r.Address.FirstLine,
			SecondLine: r.Address.SecondLine,
			ThirdLine:  r.Address.ThirdLine,
		},
		TaxID:                r.TaxID,
		BankAccountNumber:    r.BankAccountNumber,
		OptionalContactInfo:  r.OptionalContactInfo,
		ActivationToken:      r.ActivationToken,
		ActivationTime:       r.ActivationTime,
		RegistrationTime:     r.RegistrationTime,
		LastModificationTime: r.LastModificationTime,
		Enabled:              r.Enabled,
		Version:              version,
	}
}

func newUserRecord(u *entity.User) userRecord {
	roles := make([]roleRecord, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, roleRecord{Role: string(r.Role), CompanyCode: r.CompanyCode})
	}
	return userRecord{
		Password:                u.PasswordHash,
		FirstName:               u.FirstName,
		MiddleName:              u.MiddleName,
		LastName:                u.LastName,
		Email:                   u.Email,
		FailedLoginAttempts:     u.FailedLoginAttempts,
		Enabled:                 u.Enabled,
		AccountLocked:           u.AccountLocked,
		PasswordExpiringEnabled: u.PasswordExpiringEnabled,
		RegistrationTime:        u.RegistrationTime,
		LastModificationTime:    u.LastModificationTime,
		ActivatedTime:           u.ActivatedTime,
		PasswordExpiryTime:      u.PasswordExpiryTime,
		AccountExpiryTime:       u.AccountExpiryTime,
		ActivationKey:           u.ActivationKey,
		Roles:                   roles,
	}
}

func (r userRecord) toEntity(id, username string, version int64) *entity.User {
	roles := make([]entity.CompanyRole, 0, len(r.Roles))
	for _, cr := range r.Roles {
		roles = append(roles, entity.CompanyRole{Role: entity.Role(cr.Role), CompanyCode: cr.CompanyCode})
	}
	return &entity.User{
		ID:                      id,
		Username:                username,
		PasswordHash:            r.Password,
		FirstName:               r.FirstName,
		MiddleName:              r.MiddleName,
		LastName:                r.LastName,
		Email:                   r.Email,
		FailedLoginAttempts:     r.FailedLoginAttempts,
		Enabled:                 r.Enabled,
		AccountLocked:           r.AccountLocked,
		PasswordExpiringEnabled: r.PasswordExpiringEnabled,
		RegistrationTime:        r.RegistrationTime,
		LastModificationTime:    r.LastModificationTime,
		ActivatedTime:           r.ActivatedTime,
		PasswordExpiryTime:      r.PasswordExpiryTime,
		AccountExpiryTime:       r.AccountExpiryTime,
		ActivationKey:           r.ActivationKey,
		Roles:                   roles,
		Version:                 version,
	}
}
