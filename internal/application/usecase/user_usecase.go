package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/sm-customers/internal/application/credentials"
	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/internal/application/validation"
	"github.com/jhoicas/sm-customers/internal/domain"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	creds  *credentials.Provisioner
	notify *Dispatcher
	log    *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, creds *credentials.Provisioner, notify *Dispatcher, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, creds: creds, notify: notify, log: log.Component("user")}
}

// List devuelve todos los usuarios con la contraseña enmascarada.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResource, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResource, 0, len(list))
	for _, u := range list {
		items = append(items, UserToResource(u))
	}
	return items, nil
}

// GetByUsername obtiene un usuario. Devuelve domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*dto.UserResource, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	res := UserToResource(user)
	return &res, nil
}

// Register crea un usuario pendiente de activación. La contraseña es obligatoria.
// Devuelve domain.ErrConflict si el username ya existe.
func (uc *UserUseCase) Register(ctx context.Context, in *dto.UserResource) (*dto.UserResource, error) {
	if in == nil {
		return nil, domain.ErrMissingPayload
	}
	if err := validation.ValidateUser(in, true).Err(validation.ObjectUser); err != nil {
		uc.log.Info().Err(err).Msg("payload de usuario inválido")
		return nil, err
	}
	username := strings.TrimSpace(in.Username)
	existing, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.log.Warn().Str("username", username).Msg("el username ya existe")
		return nil, domain.ConflictError("user", username)
	}

	user, err := uc.creds.NewUser(in)
	if err != nil {
		return nil, err
	}
	user.Username = username

	saved, err := uc.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", saved.Username).Str("user_id", saved.ID).Msg("usuario registrado")
	uc.notify.Dispatch(ports.Notification{
		Type:          ports.NotificationUserRegistered,
		Recipient:     saved.Email,
		Username:      saved.Username,
		ActivationKey: deref(saved.ActivationKey),
	})
	res := UserToResource(saved)
	return &res, nil
}

// Activate habilita y desbloquea la cuenta si el par (username, clave) existe.
// Devuelve domain.ErrNotFound si no.
func (uc *UserUseCase) Activate(ctx context.Context, username, key string) (*dto.UserResource, error) {
	user, err := uc.repo.FindByUsernameAndActivationKey(ctx, username, key)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Activate(uc.creds.Now())
	saved, err := uc.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", saved.Username).Msg("usuario activado")
	uc.notify.Dispatch(ports.Notification{
		Type:      ports.NotificationUserActivated,
		Recipient: saved.Email,
		Username:  saved.Username,
	})
	res := UserToResource(saved)
	return &res, nil
}
