package usecase

import "github.com/jhoicas/sm-customers/internal/application/dto"

// RegistrationPlan lo que el llamante anunció (fase 1, elige las reglas de validación).
type RegistrationPlan string

const (
	PlanNoUser       RegistrationPlan = "NO_USER"
	PlanNewUser      RegistrationPlan = "NEW_USER"
	PlanExistingUser RegistrationPlan = "EXISTING_USER"
)

// RegistrationPath lo que el almacén decidió (fase 2, elige la rama de persistencia).
type RegistrationPath string

const (
	PathNone    RegistrationPath = "NONE"
	PathCreated RegistrationPath = "CREATED"
	PathMerged  RegistrationPath = "MERGED"
)

// RegistrationOutcome une ambas fases. Un desacuerdo se conserva y se registra, no se rechaza.
type RegistrationOutcome struct {
	Plan RegistrationPlan
	Path RegistrationPath
}

// Mismatch informa si el anuncio del llamante no coincide con lo encontrado en el almacén.
func (o RegistrationOutcome) Mismatch() bool {
	switch o.Plan {
	case PlanNewUser:
		return o.Path != PathCreated
	case PlanExistingUser:
		return o.Path != PathMerged
	default:
		return o.Path != PathNone
	}
}

// RegistrationResult respuesta de alta de empresa más el resultado etiquetado.
type RegistrationResult struct {
	Response dto.CompanyAndUserResponse
	Outcome  RegistrationOutcome
}

func planFor(req *dto.CompanyAndUserRequest) RegistrationPlan {
	switch {
	case req.UserResource == nil:
		return PlanNoUser
	case req.IsNewUser:
		return PlanNewUser
	default:
		return PlanExistingUser
	}
}
