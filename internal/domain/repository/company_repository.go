package repository

import (
	"context"

	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Las búsquedas devuelven (nil, nil) si no hay resultado.
type CompanyRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.Company, error)
	FindByCodeAndActivationToken(ctx context.Context, code, token string) (*entity.Company, error)
	// Save inserta si ID está vacío (asigna ID y Version=0); si no, reemplaza exigiendo la misma Version
	// y la incrementa. Devuelve la entidad tal como quedó almacenada.
	Save(ctx context.Context, company *entity.Company) (*entity.Company, error)
	FindAll(ctx context.Context) ([]*entity.Company, error)
}
