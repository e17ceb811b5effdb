package repository

import (
	"context"

	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByUsernameAndActivationKey(ctx context.Context, username, key string) (*entity.User, error)
	// Save tiene la misma semántica de inserción/versionado que CompanyRepository.Save.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// HasCompanyRole informa si algún usuario tiene asignado el par (rol, empresa).
	HasCompanyRole(ctx context.Context, role entity.CompanyRole) (bool, error)
}
