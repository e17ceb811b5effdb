package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

type addressDoc struct {
	PostCode   string  `bson:"postCode"`
	City       string  `bson:"city"`
	FirstLine  string  `bson:"firstLine"`
	SecondLine *string `bson:"secondLine,omitempty"`
	ThirdLine  *string `bson:"thirdLine,omitempty"`
}

type companyDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Code                 string             `bson:"code"`
	Name                 string             `bson:"name"`
	Email                string             `bson:"email"`
	Address              addressDoc         `bson:"address"`
	TaxID                *string            `bson:"taxId,omitempty"`
	BankAccountNumber    *string            `bson:"bankAccountNumber,omitempty"`
	OptionalContactInfo  *string            `bson:"optionalContactInfo,omitempty"`
	ActivationToken      *string            `bson:"activationToken,omitempty"`
	ActivationTime       *time.Time         `bson:"activationTime,omitempty"`
	RegistrationTime     *time.Time         `bson:"registrationTime,omitempty"`
	LastModificationTime *time.Time         `bson:"lastModificationTime,omitempty"`
	Enabled              bool               `bson:"enabled"`
	Version              int64              `bson:"version"`
}

type companyRoleDoc struct {
	Role        string `bson:"role"`
	CompanyCode string `bson:"companyCode"`
}

type userDoc struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	Username                string             `bson:"username"`
	Password                string             `bson:"password"`
	FirstName               string             `bson:"firstName"`
	MiddleName              *string            `bson:"middleName,omitempty"`
	LastName                string             `bson:"lastName"`
	Email                   string             `bson:"email"`
	FailedLoginAttempts     int                `bson:"failedLoginAttempts"`
	Enabled                 bool               `bson:"enabled"`
	AccountLocked           bool               `bson:"accountLocked"`
	PasswordExpiringEnabled bool               `bson:"passwordExpiringEnabled"`
	RegistrationTime        *time.Time         `bson:"registrationTime,omitempty"`
	LastModificationTime    *time.Time         `bson:"lastModificationTime,omitempty"`
	ActivatedTime           *time.Time         `bson:"activatedTime,omitempty"`
	PasswordExpiryTime      *time.Time         `bson:"passwordExpiryTime,omitempty"`
	AccountExpiryTime       *time.Time         `bson:"accountExpiryTime,omitempty"`
	ActivationKey           *string            `bson:"activationKey,omitempty"`
	Roles                   []companyRoleDoc   `bson:"roles"`
	Version                 int64              `bson:"version"`
}

func companyToDoc(c *entity.Company) (companyDoc, error) {
	var id primitive.ObjectID
	if c.ID != "" {
		var err error
		if id, err = primitive.ObjectIDFromHex(c.ID); err != nil {
			return companyDoc{}, err
		}
	}
	return companyDoc{
		ID:    id,
		Code:  c.Code,
		Name:  c.Name,
		Email: c.Email,
		Address: addressDoc{
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
	}, nil
}

func (d companyDoc) toEntity() *entity.Company {
	return &entity.Company{
		ID:    d.ID.Hex(),
		Code:  d.Code,
		Name:  d.Name,
		Email: d.Email,
		Address: entity.Address{
			PostCode:   d.Address.PostCode,
			City:       d.Address.City,
			FirstLine:  d.Address.FirstLine,
			SecondLine: d.Address.SecondLine,
			ThirdLine:  d.Address.ThirdLine,
		},
		TaxID:                d.TaxID,
		BankAccountNumber:    d.BankAccountNumber,
		OptionalContactInfo:  d.OptionalContactInfo,
		ActivationToken:      d.ActivationToken,
		ActivationTime:       d.ActivationTime,
		RegistrationTime:     d.RegistrationTime,
		LastModificationTime: d.LastModificationTime,
		Enabled:              d.Enabled,
		Version:              d.Version,
	}
}

func userToDoc(u *entity.User) (userDoc, error) {
	var id primitive.ObjectID
	if u.ID != "" {
		var err error
		if id, err = primitive.ObjectIDFromHex(u.ID); err != nil {
			return userDoc{}, err
		}
	}
	roles := make([]companyRoleDoc, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, companyRoleDoc{Role: string(r.Role), CompanyCode: r.CompanyCode})
	}
	return userDoc{
		ID:                      id,
		Username:                u.Username,
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
		Version:                 u.Version,
	}, nil
}

func (d userDoc) toEntity() *entity.User {
	roles := make([]entity.CompanyRole, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, entity.CompanyRole{Role: entity.Role(r.Role), CompanyCode: r.CompanyCode})
	}
	return &entity.User{
		ID:                      d.ID.Hex(),
		Username:                d.Username,
		PasswordHash:            d.Password,
		FirstName:               d.FirstName,
		MiddleName:              d.MiddleName,
		LastName:                d.LastName,
		Email:                   d.Email,
		FailedLoginAttempts:     d.FailedLoginAttempts,
		Enabled:                 d.Enabled,
		AccountLocked:           d.AccountLocked,
		PasswordExpiringEnabled: d.PasswordExpiringEnabled,
		RegistrationTime:        d.RegistrationTime,
		LastModificationTime:    d.LastModificationTime,
		ActivatedTime:           d.ActivatedTime,
		PasswordExpiryTime:      d.PasswordExpiryTime,
		AccountExpiryTime:       d.AccountExpiryTime,
		ActivationKey:           d.ActivationKey,
		Roles:                   roles,
		Version:                 d.Version,
	}
}
