package entity

import "time"

// Address dirección postal de una empresa.
type Address struct {
	PostCode   string
	City       string
	FirstLine  string
	SecondLine *string
	ThirdLine  *string
}

// Company representa una empresa cliente. Code es la clave natural e inmutable.
type Company struct {
	ID                   string // asignado por el almacén; vacío hasta persistir
	Code                 string
	Name                 string
	Email                string
	Address              Address
	TaxID                *string
	BankAccountNumber    *string
	OptionalContactInfo  *string
	ActivationToken      *string // presente mientras la activación está pendiente
	ActivationTime       *time.Time
	RegistrationTime     *time.Time
	LastModificationTime *time.Time
	Enabled              bool
	Version              int64
}

// IsPersisted informa si el almacén ya asignó un ID.
func (c *Company) IsPersisted() bool {
	return c.ID != ""
}

// Activate habilita la empresa y borra el token de activación.
func (c *Company) Activate(now time.Time) {
	c.ActivationToken = nil
	c.ActivationTime = &now
	c.LastModificationTime = &now
	c.Enabled = true
}
