package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/sm-customers/internal/application/credentials"
	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/internal/application/validation"
	"github.com/jhoicas/sm-customers/internal/domain"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// CompanyUseCase aplica reglas de negocio para empresas: consulta, alta con usuario administrador
// y activación.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	creds     *credentials.Provisioner
	notify    *Dispatcher
	log       *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	users repository.UserRepository,
	creds *credentials.Provisioner,
	notify *Dispatcher,
	log *logger.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{
		companies: companies,
		users:     users,
		creds:     creds,
		notify:    notify,
		log:       log.Component("company"),
	}
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResource, error) {
	list, err := uc.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResource, 0, len(list))
	for _, c := range list {
		items = append(items, CompanyToResource(c))
	}
	return items, nil
}

// GetByCode obtiene una empresa por código. Devuelve domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByCode(ctx context.Context, code string) (*dto.CompanyResource, error) {
	company, err := uc.companies.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	res := CompanyToResource(company)
	return &res, nil
}

// Register da de alta una empresa y, si viene, su usuario administrador.
//
// Pasos: validación compuesta; conflicto por código (sin tocar usuarios); búsqueda del usuario y
// preparación de credenciales si es nuevo; guardado de la empresa; rol ADMIN@code; guardado del
// usuario. No hay transacción entre los dos guardados: si falla el del usuario la empresa queda
// sin administrador y el error se devuelve tal cual (ver ReconciliationUseCase).
// La búsqueda del usuario va antes del guardado de la empresa, al revés que el flujo clásico
// (empresa primero), para que un usuario rechazado no deje una empresa escrita.
func (uc *CompanyUseCase) Register(ctx context.Context, req *dto.CompanyAndUserRequest) (*RegistrationResult, error) {
	if req == nil || req.CompanyResource == nil {
		return nil, domain.ErrMissingPayload
	}
	outcome := RegistrationOutcome{Plan: planFor(req), Path: PathNone}

	if err := validation.ValidateRegistration(req).Err(validation.ObjectRegistration); err != nil {
		uc.log.Info().Err(err).Msg("payload de registro inválido")
		return nil, err
	}

	code := strings.TrimSpace(req.CompanyResource.Code)
	existing, err := uc.companies.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.log.Warn().Str("company_code", code).Msg("el código de empresa ya existe")
		return nil, domain.ConflictError("company", code)
	}

	// El usuario se resuelve antes de escribir nada: un usuario nuevo sin contraseña
	// se rechaza sin dejar una empresa huérfana.
	var user *entity.User
	if req.UserResource != nil {
		user, outcome.Path, err = uc.resolveAdmin(ctx, req.UserResource)
		if err != nil {
			return nil, err
		}
	}

	company, err := companyFromResource(req.CompanyResource)
	if err != nil {
		return nil, err
	}
	if err := uc.prepareCompany(company, code); err != nil {
		return nil, err
	}

	saved, err := uc.companies.Save(ctx, company)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_code", saved.Code).Str("company_id", saved.ID).Msg("empresa guardada")
	uc.notify.Dispatch(ports.Notification{
		Type:          ports.NotificationCompanyRegistered,
		Recipient:     saved.Email,
		CompanyCode:   saved.Code,
		ActivationKey: deref(saved.ActivationToken),
	})

	result := &RegistrationResult{
		Response: dto.CompanyAndUserResponse{CompanyResource: CompanyToResource(saved)},
		Outcome:  outcome,
	}
	if user == nil {
		uc.logMismatch(outcome, code, "")
		return result, nil
	}

	withRole := user.WithRole(entity.AdminOf(saved.Code))
	savedUser, err := uc.users.Save(ctx, &withRole)
	if err != nil {
		uc.log.Error().Err(err).
			Str("company_code", saved.Code).
			Str("username", user.Username).
			Msg("empresa guardada sin administrador: falló el guardado del usuario")
		return nil, err
	}
	uc.log.Info().
		Str("company_code", saved.Code).
		Str("username", savedUser.Username).
		Str("path", string(outcome.Path)).
		Msg("administrador asignado")
	if outcome.Path == PathCreated {
		uc.notify.Dispatch(ports.Notification{
			Type:          ports.NotificationUserRegistered,
			Recipient:     savedUser.Email,
			Username:      savedUser.Username,
			CompanyCode:   saved.Code,
			ActivationKey: deref(savedUser.ActivationKey),
		})
	}

	uc.logMismatch(outcome, code, savedUser.Username)
	userRes := UserToResource(savedUser)
	result.Response.UserResource = &userRes
	return result, nil
}

// Activate habilita la empresa si el par (código, token) existe. Devuelve domain.ErrNotFound si no.
func (uc *CompanyUseCase) Activate(ctx context.Context, code, token string) (*dto.CompanyResource, error) {
	company, err := uc.companies.FindByCodeAndActivationToken(ctx, code, token)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Activate(uc.creds.Now())
	saved, err := uc.companies.Save(ctx, company)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_code", saved.Code).Msg("empresa activada")
	uc.notify.Dispatch(ports.Notification{
		Type:        ports.NotificationCompanyActivated,
		Recipient:   saved.Email,
		CompanyCode: saved.Code,
	})
	res := CompanyToResource(saved)
	return &res, nil
}

// resolveAdmin busca el usuario por username: si existe se reutiliza sin tocar sus credenciales,
// si no se construye uno nuevo con credenciales provisionadas.
func (uc *CompanyUseCase) resolveAdmin(ctx context.Context, in *dto.UserResource) (*entity.User, RegistrationPath, error) {
	username := strings.TrimSpace(in.Username)
	existing, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, PathNone, err
	}
	if existing != nil {
		return existing, PathMerged, nil
	}
	user, err := uc.creds.NewUser(in)
	if err != nil {
		return nil, PathNone, err
	}
	user.Username = username
	return user, PathCreated, nil
}

func (uc *CompanyUseCase) prepareCompany(company *entity.Company, code string) error {
	now := uc.creds.Now()
	company.Code = code
	if company.RegistrationTime == nil {
		company.RegistrationTime = &now
	}
	company.LastModificationTime = &now
	if company.ActivationToken == nil || strings.TrimSpace(*company.ActivationToken) == "" {
		token, err := uc.creds.ActivationToken()
		if err != nil {
			return err
		}
		company.ActivationToken = &token
	}
	return nil
}

func (uc *CompanyUseCase) logMismatch(o RegistrationOutcome, code, username string) {
	if !o.Mismatch() {
		return
	}
	uc.log.Warn().
		Str("company_code", code).
		Str("username", username).
		Str("plan", string(o.Plan)).
		Str("path", string(o.Path)).
		Msg("el indicador isNewUser no coincide con el almacén")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
