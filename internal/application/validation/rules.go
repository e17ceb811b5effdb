package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// Códigos de mensaje devueltos en fieldErrors[].message.
const (
	CodeUsernameRequired  = "errors.user.resource.username.required"
	CodeFirstNameRequired = "errors.user.resource.firstname.required"
	CodeLastNameRequired  = "errors.user.resource.lastname.required"
	CodeUserEmailRequired = "errors.user.resource.email.required"
	CodeRolesRequired     = "errors.user.resource.roles.required"
	CodeRolesInvalid      = "errors.user.resource.roles.invalid"
	CodePasswordFormat    = "errors.user.resource.password.format"
	CodePasswordMissing   = "errors.user.resource.password.missing"
	CodeUserEmailFormat   = "errors.user.resource.email.format"

	CodeCompanyCodeRequired  = "errors.company.resource.code.required"
	CodeCompanyNameRequired  = "errors.company.resource.name.required"
	CodeCompanyEmailRequired = "errors.company.resource.email.required"
	CodePostCodeRequired     = "errors.company.resource.address.postcode.required"
	CodeCityRequired         = "errors.company.resource.address.city.required"
	CodeFirstLineRequired    = "errors.company.resource.address.firstline.required"
	CodeCompanyEmailFormat   = "errors.company.resource.email.format"
)

// Nombres de objeto usados en la respuesta de validación.
const (
	ObjectUser         = "userResource"
	ObjectCompany      = "companyResource"
	ObjectRegistration = "companyAndUserRequest"
)

// PasswordSymbols símbolos admitidos en una contraseña; se exige al menos uno.
const PasswordSymbols = "@$!%*#?&_-+=()§:,;"

var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,5}$`)

	// RE2 no tiene lookahead: el alfabeto se valida con una expresión y cada clase obligatoria aparte.
	passwordAlphabet = regexp.MustCompile(`^[a-zA-Z\d@$!%*#?&_\-+=()§:,;]{8,}$`)
	passwordClasses  = []*regexp.Regexp{
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[A-Z]`),
		regexp.MustCompile(`\d`),
		regexp.MustCompile(`[@$!%*#?&_\-+=()§:,;]`),
	}
)

// ValidEmail informa si s tiene la forma local@dominio.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword informa si s cumple la política de contraseñas: al menos 8 caracteres,
// una minúscula, una mayúscula, un dígito y un símbolo de PasswordSymbols, sin otros caracteres.
func ValidPassword(s string) bool {
	if !passwordAlphabet.MatchString(s) {
		return false
	}
	for _, re := range passwordClasses {
		if !re.MatchString(s) {
			return false
		}
	}
	return true
}

// ValidateUser aplica las reglas de usuario. Con passwordRequired, una contraseña ausente o en
// blanco produce CodePasswordMissing; una presente siempre debe cumplir el formato.
func ValidateUser(user *dto.UserResource, passwordRequired bool) Errors {
	if user == nil {
		user = &dto.UserResource{}
	}
	var errs Errors

	errs.RejectIfBlank("username", user.Username, CodeUsernameRequired)
	errs.RejectIfBlank("firstName", user.FirstName, CodeFirstNameRequired)
	errs.RejectIfBlank("lastName", user.LastName, CodeLastNameRequired)
	errs.RejectIfBlank("email", user.Email, CodeUserEmailRequired)

	if len(user.Roles) == 0 {
		errs.Reject("roles", CodeRolesRequired)
	}
	for i, r := range user.Roles {
		if !entity.Role(r.Role).Valid() || isBlank(r.CompanyCode) {
			errs.Reject("roles["+strconv.Itoa(i)+"]", CodeRolesInvalid)
		}
	}

	switch {
	case user.Password == nil || isBlank(*user.Password):
		if passwordRequired {
			errs.Reject("password", CodePasswordMissing)
		}
	case !ValidPassword(*user.Password):
		errs.Reject("password", CodePasswordFormat)
	}

	if !isBlank(user.Email) && !ValidEmail(strings.TrimSpace(user.Email)) {
		errs.Reject("email", CodeUserEmailFormat)
	}
	return errs
}

// ValidateCompany aplica las reglas de empresa. Una dirección ausente cuenta como tres campos en blanco.
func ValidateCompany(company *dto.CompanyResource) Errors {
	if company == nil {
		company = &dto.CompanyResource{}
	}
	addr := company.Address
	if addr == nil {
		addr = &dto.AddressResource{}
	}
	var errs Errors

	errs.RejectIfBlank("code", company.Code, CodeCompanyCodeRequired)
	errs.RejectIfBlank("name", company.Name, CodeCompanyNameRequired)
	errs.RejectIfBlank("email", company.Email, CodeCompanyEmailRequired)
	errs.RejectIfBlank("address.postCode", addr.PostCode, CodePostCodeRequired)
	errs.RejectIfBlank("address.city", addr.City, CodeCityRequired)
	errs.RejectIfBlank("address.firstLine", addr.FirstLine, CodeFirstLineRequired)

	if !isBlank(company.Email) && !ValidEmail(strings.TrimSpace(company.Email)) {
		errs.Reject("email", CodeCompanyEmailFormat)
	}
	return errs
}

// ValidateRegistration compone las reglas de empresa y, si hay usuario, las de usuario.
// La contraseña es obligatoria solo cuando el llamante anuncia un usuario nuevo.
func ValidateRegistration(req *dto.CompanyAndUserRequest) Errors {
	if req == nil {
		req = &dto.CompanyAndUserRequest{}
	}
	errs := ValidateCompany(req.CompanyResource)
	if req.UserResource != nil {
		errs.Merge(ValidateUser(req.UserResource, req.IsNewUser))
	}
	return errs
}
