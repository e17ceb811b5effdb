package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/validation"
	"github.com/jhoicas/sm-customers/internal/domain"
)

func strPtr(s string) *string { return &s }

func validUser() *dto.UserResource {
	return &dto.UserResource{
		Username:  "davidk",
		Password:  strPtr("Pass?Word_1"),
		FirstName: "David",
		LastName:  "Kovacs",
		Email:     "davidk@bkk.hu",
		Roles:     []dto.CompanyRoleResource{{Role: "ADMIN", CompanyCode: "bkk"}},
	}
}

func validCompany() *dto.CompanyResource {
	return &dto.CompanyResource{
		Code:  "bkk",
		Name:  "BKK Kft.",
		Email: "info@bkk.hu",
		Address: &dto.AddressResource{
			PostCode:  "1111",
			City:      "Budapest",
			FirstLine: "Fo utca 1.",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateUser_Valido_SinErrores(t *testing.T) {
	assert.Empty(t, validation.ValidateUser(validUser(), true))
}

func TestValidateUser_CamposEnBlancoYSinRoles_CincoErrores(t *testing.T) {
	u := &dto.UserResource{Username: " ", FirstName: " ", LastName: "", Email: "  "}

	errs := validation.ValidateUser(u, false)

	require.Len(t, errs, 5)
	for _, f := range []string{"username", "firstName", "lastName", "email", "roles"} {
		assert.True(t, errs.Has(f), f)
	}
}

func TestValidateUser_EmailYPasswordConFormatoInvalido(t *testing.T) {
	u := validUser()
	u.Email = "emailemail.com"
	u.Password = strPtr("passwd")
	u.Roles = nil

	errs := validation.ValidateUser(u, false)

	assert.ElementsMatch(t, validation.Errors{
		{Field: "roles", Message: validation.CodeRolesRequired},
		{Field: "password", Message: validation.CodePasswordFormat},
		{Field: "email", Message: validation.CodeUserEmailFormat},
	}, errs)
}

func TestValidateUser_PasswordObligatorio(t *testing.T) {
	u := validUser()
	u.Password = nil

	assert.Empty(t, validation.ValidateUser(u, false))

	errs := validation.ValidateUser(u, true)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.FieldError{Field: "password", Message: validation.CodePasswordMissing}, errs[0])
}

func TestValidateUser_PasswordEnBlancoCuentaComoAusente(t *testing.T) {
	u := validUser()
	u.Password = strPtr("   ")

	assert.Empty(t, validation.ValidateUser(u, false))
	assert.Equal(t, validation.CodePasswordMissing, validation.ValidateUser(u, true)[0].Message)
}

func TestValidateUser_RolDesconocido(t *testing.T) {
	u := validUser()
	u.Roles = append(u.Roles, dto.CompanyRoleResource{Role: "ROLE_GOD", CompanyCode: "bkk"})

	errs := validation.ValidateUser(u, true)

	require.Len(t, errs, 1)
	assert.Equal(t, domain.FieldError{Field: "roles[1]", Message: validation.CodeRolesInvalid}, errs[0])
}

func TestValidateUser_Nil_TodosLosObligatorios(t *testing.T) {
	assert.Len(t, validation.ValidateUser(nil, true), 6)
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"valida", "Pass?Word_1", true},
		{"simbolo seccion", "Abcdefg1§", true},
		{"parentesis", "(Abcdef1)", true},
		{"corta", "Ab1_xyz", false},
		{"sin mayuscula", "password_1", false},
		{"sin minuscula", "PASSWORD_1", false},
		{"sin digito", "Password_x", false},
		{"sin simbolo", "Password12", false},
		{"caracter no admitido", "Pass Word_1", false},
		{"tilde no admitida", "Contraseña_1A", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, validation.ValidPassword(tc.in))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validation.ValidEmail("email@email.com"))
	assert.True(t, validation.ValidEmail("first.last-x@mail.co.uk"))
	assert.False(t, validation.ValidEmail("emailemail.com"))
	assert.False(t, validation.ValidEmail("a@b"))
	assert.False(t, validation.ValidEmail("a@b.toolongtld"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCompany_Valida_SinErrores(t *testing.T) {
	assert.Empty(t, validation.ValidateCompany(validCompany()))
}

func TestValidateCompany_CamposEnBlanco_SeisErrores(t *testing.T) {
	c := &dto.CompanyResource{
		Code: " ", Name: "", Email: " ",
		Address: &dto.AddressResource{PostCode: " ", City: "", FirstLine: "\t"},
	}

	errs := validation.ValidateCompany(c)

	require.Len(t, errs, 6)
	for _, f := range []string{"code", "name", "email", "address.postCode", "address.city", "address.firstLine"} {
		assert.True(t, errs.Has(f), f)
	}
}

func TestValidateCompany_SinDireccion_TresErroresDeDireccion(t *testing.T) {
	c := validCompany()
	c.Address = nil

	errs := validation.ValidateCompany(c)

	assert.Equal(t, validation.Errors{
		{Field: "address.postCode", Message: validation.CodePostCodeRequired},
		{Field: "address.city", Message: validation.CodeCityRequired},
		{Field: "address.firstLine", Message: validation.CodeFirstLineRequired},
	}, errs)
}

func TestValidateCompany_EmailInvalido(t *testing.T) {
	c := validCompany()
	c.Email = "info-bkk.hu"

	errs := validation.ValidateCompany(c)

	require.Len(t, errs, 1)
	assert.Equal(t, validation.CodeCompanyEmailFormat, errs[0].Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro compuesto
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateRegistration_SinUsuario_SoloReglasDeEmpresa(t *testing.T) {
	errs := validation.ValidateRegistration(&dto.CompanyAndUserRequest{CompanyResource: validCompany(), IsNewUser: true})
	assert.Empty(t, errs)
}

func TestValidateRegistration_UsuarioNuevoSinPassword(t *testing.T) {
	u := validUser()
	u.Password = nil

	errs := validation.ValidateRegistration(&dto.CompanyAndUserRequest{
		CompanyResource: validCompany(), UserResource: u, IsNewUser: true,
	})

	require.Len(t, errs, 1)
	assert.Equal(t, validation.CodePasswordMissing, errs[0].Message)
}

func TestValidateRegistration_UsuarioExistenteSinPassword_Valido(t *testing.T) {
	u := validUser()
	u.Password = nil

	errs := validation.ValidateRegistration(&dto.CompanyAndUserRequest{
		CompanyResource: validCompany(), UserResource: u, IsNewUser: false,
	})

	assert.Empty(t, errs)
}

func TestValidateRegistration_AcumulaEmpresaYUsuario(t *testing.T) {
	c := validCompany()
	c.Name = ""
	u := validUser()
	u.FirstName = ""

	errs := validation.ValidateRegistration(&dto.CompanyAndUserRequest{CompanyResource: c, UserResource: u})

	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("firstName"))
	assert.Len(t, errs, 2)
}

func TestErrors_Err(t *testing.T) {
	var errs validation.Errors
	assert.NoError(t, errs.Err(validation.ObjectUser))

	errs.Reject("username", validation.CodeUsernameRequired)
	err := errs.Err(validation.ObjectUser)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, validation.ObjectUser, vErr.Object)
	assert.Len(t, vErr.Fields, 1)
}
