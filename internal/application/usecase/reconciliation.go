package usecase

import (
	"context"

	"github.com/jhoicas/sm-customers/internal/domain/entity"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// ReconciliationUseCase detecta empresas sin administrador: el residuo de un alta en la que
// se guardó la empresa pero falló el guardado del usuario. Solo informa, no corrige.
// Las empresas dadas de alta sin userResource también aparecen; el almacén no distingue
// ambos casos.
type ReconciliationUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	log       *logger.Logger
}

// NewReconciliationUseCase construye el caso de uso.
func NewReconciliationUseCase(companies repository.CompanyRepository, users repository.UserRepository, log *logger.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{companies: companies, users: users, log: log.Component("reconciliation")}
}

// FindOrphanCompanies lista las empresas para las que ningún usuario tiene ADMIN@code.
func (uc *ReconciliationUseCase) FindOrphanCompanies(ctx context.Context) ([]*entity.Company, error) {
	companies, err := uc.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var orphans []*entity.Company
	for _, c := range companies {
		ok, err := uc.users.HasCompanyRole(ctx, entity.AdminOf(c.Code))
		if err != nil {
			return nil, err
		}
		if !ok {
			orphans = append(orphans, c)
		}
	}
	return orphans, nil
}

// Report ejecuta FindOrphanCompanies y registra cada empresa huérfana. Devuelve cuántas encontró.
func (uc *ReconciliationUseCase) Report(ctx context.Context) (int, error) {
	orphans, err := uc.FindOrphanCompanies(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("reconciliación fallida")
		return 0, err
	}
	for _, c := range orphans {
		uc.log.Warn().
			Str("company_code", c.Code).
			Str("company_id", c.ID).
			Msg("empresa sin administrador (alta sin usuario o guardado del usuario fallido)")
	}
	uc.log.Info().Int("orphans", len(orphans)).Msg("reconciliación completada")
	return len(orphans), nil
}
