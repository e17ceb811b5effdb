// Package credentials prepara las credenciales de un usuario recién creado:
// hash de contraseña, clave de activación y caducidades.
package credentials

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/internal/application/validation"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// Valores por defecto.
const (
	DefaultActivationKeyLength = 32
	DefaultPasswordExpiry      = 90 * 24 * time.Hour
)

// Config parámetros de provisión.
type Config struct {
	ActivationKeyLength int
	PasswordExpiry      time.Duration
}

// Provisioner construye usuarios nuevos con credenciales listas para persistir.
type Provisioner struct {
	hasher ports.PasswordHasher
	tokens ports.TokenGenerator
	cfg    Config
	now    func() time.Time
}

// NewProvisioner construye el provisionador. now puede ser nil (usa time.Now en UTC).
func NewProvisioner(hasher ports.PasswordHasher, tokens ports.TokenGenerator, cfg Config, now func() time.Time) *Provisioner {
	if cfg.ActivationKeyLength <= 0 {
		cfg.ActivationKeyLength = DefaultActivationKeyLength
	}
	if cfg.PasswordExpiry <= 0 {
		cfg.PasswordExpiry = DefaultPasswordExpiry
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Provisioner{hasher: hasher, tokens: tokens, cfg: cfg, now: now}
}

// Now hora de referencia del provisionador.
func (p *Provisioner) Now() time.Time {
	return p.now()
}

// ActivationToken genera un token de activación de la longitud configurada.
func (p *Provisioner) ActivationToken() (string, error) {
	token, err := p.tokens.Alphanumeric(p.cfg.ActivationKeyLength)
	if err != nil {
		return "", fmt.Errorf("generando token de activación: %w", err)
	}
	return token, nil
}

// HashPassword aplica el hasher configurado.
func (p *Provisioner) HashPassword(plain string) (string, error) {
	hash, err := p.hasher.Hash(plain)
	if err != nil {
		return "", fmt.Errorf("hasheando contraseña: %w", err)
	}
	return hash, nil
}

// NewUser construye un usuario pendiente de activación a partir del payload: cuenta bloqueada
// y deshabilitada, contraseña hasheada con caducidad, clave de activación y roles sin duplicados.
// Sin contraseña devuelve un error de validación (CodePasswordMissing).
func (p *Provisioner) NewUser(in *dto.UserResource) (*entity.User, error) {
	if in.Password == nil || strings.TrimSpace(*in.Password) == "" {
		var errs validation.Errors
		errs.Reject("password", validation.CodePasswordMissing)
		return nil, errs.Err(validation.ObjectUser)
	}
	hash, err := p.HashPassword(*in.Password)
	if err != nil {
		return nil, err
	}
	key, err := p.ActivationToken()
	if err != nil {
		return nil, err
	}
	now := p.now()
	expiry := now.Add(p.cfg.PasswordExpiry)

	return &entity.User{
		Username:                in.Username,
		PasswordHash:            hash,
		FirstName:               in.FirstName,
		MiddleName:              in.MiddleName,
		LastName:                in.LastName,
		Email:                   in.Email,
		AccountLocked:           true,
		Enabled:                 false,
		PasswordExpiringEnabled: true,
		RegistrationTime:        &now,
		LastModificationTime:    &now,
		PasswordExpiryTime:      &expiry,
		AccountExpiryTime:       in.AccountExpiryTime,
		ActivationKey:           &key,
		Roles:                   RolesFromResources(in.Roles),
	}, nil
}

// RolesFromResources convierte y normaliza los roles del payload (sin duplicados, orden conservado).
func RolesFromResources(in []dto.CompanyRoleResource) []entity.CompanyRole {
	roles := make([]entity.CompanyRole, 0, len(in))
	for _, r := range in {
		roles = entity.AddRole(roles, entity.CompanyRole{Role: entity.Role(r.Role), CompanyCode: r.CompanyCode})
	}
	return roles
}
