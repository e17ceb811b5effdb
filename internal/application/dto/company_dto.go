package dto

import "time"

// AddressResource dirección postal en el formato de la API.
type AddressResource struct {
	PostCode   string  `json:"postCode"`
	City       string  `json:"city"`
	FirstLine  string  `json:"firstLine"`
	SecondLine *string `json:"secondLine"`
	ThirdLine  *string `json:"thirdLine"`
}

// CompanyResource representación pública de una empresa. Se usa tanto de entrada como de salida.
type CompanyResource struct {
	ID                   string           `json:"id,omitempty"`
	Code                 string           `json:"code"`
	Name                 string           `json:"name"`
	Email                string           `json:"email"`
	Address              *AddressResource `json:"address" copier:"-"`
	TaxID                *string          `json:"taxId"`
	BankAccountNumber    *string          `json:"bankAccountNumber"`
	OptionalContactInfo  *string          `json:"optionalContactInfo"`
	ActivationToken      *string          `json:"activationToken"`
	ActivationTime       *time.Time       `json:"activationTime"`
	RegistrationTime     *time.Time       `json:"registrationTime"`
	LastModificationTime *time.Time       `json:"lastModificationTime"`
	Enabled              bool             `json:"enabled"`
	Version              int64            `json:"version"`
}

// CompanyAndUserRequest cuerpo de POST /companies. IsNewUser decide si la contraseña es obligatoria.
type CompanyAndUserRequest struct {
	CompanyResource *CompanyResource `json:"companyResource"`
	UserResource    *UserResource    `json:"userResource,omitempty"`
	IsNewUser       bool             `json:"isNewUser"`
}

// CompanyAndUserResponse cuerpo 201 de POST /companies. UserResource se omite si no se envió usuario.
type CompanyAndUserResponse struct {
	CompanyResource CompanyResource `json:"companyResource"`
	UserResource    *UserResource   `json:"userResource,omitempty"`
}
