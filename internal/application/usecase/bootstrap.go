package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/sm-customers/internal/application/credentials"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// SuperuserConfig datos del superusuario inicial.
type SuperuserConfig struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// BootstrapUseCase crea el superusuario al arrancar si todavía no existe.
type BootstrapUseCase struct {
	users repository.UserRepository
	creds *credentials.Provisioner
	log   *logger.Logger
}

// NewBootstrapUseCase construye el caso de uso.
func NewBootstrapUseCase(users repository.UserRepository, creds *credentials.Provisioner, log *logger.Logger) *BootstrapUseCase {
	return &BootstrapUseCase{users: users, creds: creds, log: log.Component("bootstrap")}
}

// EnsureSuperuser crea el usuario con SUPERADMIN@system, habilitado, desbloqueado y sin caducidad
// de contraseña. Si el username ya existe no hace nada y devuelve created=false.
func (uc *BootstrapUseCase) EnsureSuperuser(ctx context.Context, cfg SuperuserConfig) (created bool, err error) {
	if cfg.Username == "" || cfg.Password == "" {
		return false, fmt.Errorf("superusuario: username y password son obligatorios")
	}
	existing, err := uc.users.FindByUsername(ctx, cfg.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		uc.log.Info().Str("username", cfg.Username).Msg("el superusuario ya existe")
		return false, nil
	}

	hash, err := uc.creds.HashPassword(cfg.Password)
	if err != nil {
		return false, err
	}
	now := uc.creds.Now()
	user := &entity.User{
		Username:                cfg.Username,
		PasswordHash:            hash,
		FirstName:               cfg.FirstName,
		LastName:                cfg.LastName,
		Email:                   cfg.Email,
		Enabled:                 true,
		AccountLocked:           false,
		PasswordExpiringEnabled: false,
		RegistrationTime:        &now,
		LastModificationTime:    &now,
		ActivatedTime:           &now,
		Roles:                   entity.AddRole(nil, entity.SuperAdminRole()),
	}
	saved, err := uc.users.Save(ctx, user)
	if err != nil {
		return false, err
	}
	uc.log.Info().Str("username", saved.Username).Str("user_id", saved.ID).Msg("superusuario creado")
	return true, nil
}
