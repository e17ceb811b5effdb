package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// AddRole
// ──────────────────────────────────────────────────────────────────────────────

func TestAddRole_MismoParDosVeces_NoDuplica(t *testing.T) {
	admin := entity.AdminOf("bkk")

	roles := entity.AddRole(nil, admin)
	roles = entity.AddRole(roles, admin)

	require.Len(t, roles, 1)
	assert.Equal(t, admin, roles[0])
}

func TestAddRole_ConservaRolesPreviosYOrden(t *testing.T) {
	start := []entity.CompanyRole{entity.SuperAdminRole()}

	roles := entity.AddRole(start, entity.AdminOf("bkk"))

	assert.Equal(t, []entity.CompanyRole{
		{Role: entity.RoleSuperAdmin, CompanyCode: "system"},
		{Role: entity.RoleAdmin, CompanyCode: "bkk"},
	}, roles)
}

func TestAddRole_NoModificaLaListaOriginal(t *testing.T) {
	start := make([]entity.CompanyRole, 1, 4) // capacidad extra: un append ingenuo la compartiría
	start[0] = entity.AdminOf("icecode")

	roles := entity.AddRole(start, entity.AdminOf("bkk"))
	roles[0] = entity.CompanyRole{Role: entity.RoleUser, CompanyCode: "otro"}

	assert.Len(t, start, 1)
	assert.Equal(t, entity.AdminOf("icecode"), start[0])
	assert.Equal(t, entity.AdminOf("icecode"), start[:2][0])
}

func TestAddRole_MismoRolOtraEmpresa_SeAgrega(t *testing.T) {
	roles := entity.AddRole([]entity.CompanyRole{entity.AdminOf("icecode")}, entity.AdminOf("bkk"))
	assert.Len(t, roles, 2)
}

func TestAddRole_MismaEmpresaOtroRol_SeAgrega(t *testing.T) {
	roles := entity.AddRole([]entity.CompanyRole{{Role: entity.RoleUser, CompanyCode: "bkk"}}, entity.AdminOf("bkk"))
	assert.Len(t, roles, 2)
}

func TestNormalizeRoles_EliminaDuplicadosConservandoPrimeraAparicion(t *testing.T) {
	in := []entity.CompanyRole{
		entity.AdminOf("bkk"),
		{Role: entity.RoleUser, CompanyCode: "bkk"},
		entity.AdminOf("bkk"),
	}

	out := entity.NormalizeRoles(in)

	assert.Equal(t, []entity.CompanyRole{
		entity.AdminOf("bkk"),
		{Role: entity.RoleUser, CompanyCode: "bkk"},
	}, out)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, entity.RoleSuperAdmin.Valid())
	assert.True(t, entity.RoleAdmin.Valid())
	assert.True(t, entity.RoleUser.Valid())
	assert.False(t, entity.Role("ROLE_ADMIN").Valid())
	assert.False(t, entity.Role("").Valid())
}

// ──────────────────────────────────────────────────────────────────────────────
// User / Company
// ──────────────────────────────────────────────────────────────────────────────

func TestUserWithRole_NoCompartePreviaLista(t *testing.T) {
	u := entity.User{Username: "davidk", Roles: make([]entity.CompanyRole, 0, 2)}

	updated := u.WithRole(entity.AdminOf("bkk"))

	assert.Empty(t, u.Roles)
	assert.Equal(t, []entity.CompanyRole{entity.AdminOf("bkk")}, updated.Roles)
}

func TestUserActivate(t *testing.T) {
	key := "abc"
	u := entity.User{ActivationKey: &key, AccountLocked: true}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	u.Activate(now)

	assert.Nil(t, u.ActivationKey)
	assert.True(t, u.Enabled)
	assert.False(t, u.AccountLocked)
	require.NotNil(t, u.ActivatedTime)
	assert.Equal(t, now, *u.ActivatedTime)
}

func TestCompanyActivate(t *testing.T) {
	token := "tok"
	c := entity.Company{Code: "bkk", ActivationToken: &token}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	c.Activate(now)

	assert.Nil(t, c.ActivationToken)
	assert.True(t, c.Enabled)
	require.NotNil(t, c.ActivationTime)
	assert.Equal(t, now, *c.ActivationTime)
	assert.Equal(t, now, *c.LastModificationTime)
}
