package usecase

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// CompanyToResource expone todos los campos de la empresa tal cual.
func CompanyToResource(c *entity.Company) dto.CompanyResource {
	return dto.CompanyResource{
		ID:    c.ID,
		Code:  c.Code,
		Name:  c.Name,
		Email: c.Email,
		Address: &dto.AddressResource{
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
		Version:              c.Version,
	}
}

// UserToResource expone el usuario enmascarando la contraseña: PasswordMask si hay hash, null si no.
func UserToResource(u *entity.User) dto.UserResource {
	var password *string
	if u.PasswordHash != "" {
		mask := dto.PasswordMask
		password = &mask
	}
	roles := make([]dto.CompanyRoleResource, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, dto.CompanyRoleResource{Role: string(r.Role), CompanyCode: r.CompanyCode})
	}
	return dto.UserResource{
		ID:                      u.ID,
		Username:                u.Username,
		Password:                password,
		FirstName:               u.FirstName,
		MiddleName:              u.MiddleName,
		LastName:                u.LastName,
		Email:                   u.Email,
		FailedLoginAttempts:     u.FailedLoginAttempts,
		Roles:                   roles,
		RegistrationTime:        u.RegistrationTime,
		LastModificationTime:    u.LastModificationTime,
		PasswordExpiringEnabled: u.PasswordExpiringEnabled,
		PasswordExpiryTime:      u.PasswordExpiryTime,
		AccountExpiryTime:       u.AccountExpiryTime,
		ActivationKey:           u.ActivationKey,
		ActivatedTime:           u.ActivatedTime,
		AccountLocked:           u.AccountLocked,
		Enabled:                 u.Enabled,
		Version:                 u.Version,
	}
}

// companyFromResource copia el payload a una entidad nueva. ID, versión y habilitación
// no se aceptan del cliente.
func companyFromResource(in *dto.CompanyResource) (*entity.Company, error) {
	company := &entity.Company{}
	if err := copier.Copy(company, in); err != nil {
		return nil, fmt.Errorf("copiando payload de empresa: %w", err)
	}
	if in.Address != nil {
		company.Address = entity.Address{
			PostCode:   in.Address.PostCode,
			City:       in.Address.City,
			FirstLine:  in.Address.FirstLine,
			SecondLine: in.Address.SecondLine,
			ThirdLine:  in.Address.ThirdLine,
		}
	}
	company.ID = ""
	company.Version = 0
	company.Enabled = false
	company.ActivationTime = nil
	return company, nil
}
