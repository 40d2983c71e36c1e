package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

const (
	minPasswordLength = 8
	phoneLength       = 10
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateUser valida un candidato a usuario. Orden: datos generales,
// contraseña, correo, exclusividad empleado/proveedor, subdocumento.
func ValidateUser(in *entity.UserInput) error {
	if in == nil {
		return domain.Business("El usuario no puede estar vacio")
	}

	if err := requireText("firstName", in.FirstName, "Nombre"); err != nil {
		return err
	}
	if err := requireText("lastName", in.LastName, "Apellido paterno"); err != nil {
		return err
	}
	if err := requireText("email", in.Email, "Correo"); err != nil {
		return err
	}
	if err := requireText("password", in.Password, "Contraseña"); err != nil {
		return err
	}

	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return domain.BusinessField("password", "La contraseña debe contener mínimo 8 carácteres.")
	}
	if !emailPattern.MatchString(in.Email) {
		return domain.BusinessField("email", "El correo electrónico no tiene un formato válido.")
	}

	hasEmployee := in.Employee != nil
	hasProvider := in.Provider != nil
	if hasEmployee && hasProvider {
		return domain.Business("El usuario no puede ser empleado y proveedor al mismo tiempo.")
	}
	if !hasEmployee && !hasProvider {
		return domain.Business("El usuario debe ser un empleado o un proveedor.")
	}

	if hasEmployee {
		return validateEmployee(in.Employee)
	}
	return validateProvider(in.Provider)
}

func validateEmployee(emp *entity.EmployeeInput) error {
	if err := requireText("employeeData.role", emp.Role, "Rol"); err != nil {
		return err
	}
	if err := requireText("employeeData.department", emp.Department, "Departamento"); err != nil {
		return err
	}
	if emp.Salary == nil || *emp.Salary <= 0 {
		return domain.BusinessField("employeeData.salary", "El salario del empleado debe ser mayor a 0.")
	}
	return nil
}

func validateProvider(prov *entity.ProviderInput) error {
	if err := requireText("providerData.company", prov.Company, "Empresa"); err != nil {
		return err
	}
	if err := requireText("providerData.serviceType", prov.ServiceType, "Tipo de Servicio"); err != nil {
		return err
	}
	if err := requireText("providerData.phone", prov.Phone, "Teléfono de Contacto"); err != nil {
		return err
	}
	if utf8.RuneCountInString(prov.Phone) != phoneLength {
		return domain.BusinessField("providerData.phone", "El teléfono debe contener 10 digitos")
	}
	return nil
}

// UserUnchanged informa si el candidato no cambia ningún campo editable del
// usuario almacenado. Un cambio de tipo de usuario siempre cuenta como cambio.
func UserUnchanged(in *entity.UserInput, stored *entity.User) bool {
	if in.FirstName != stored.FirstName ||
		in.LastName != stored.LastName ||
		in.MiddleName != stored.MiddleName ||
		in.Email != stored.Email ||
		in.Status != stored.Status {
		return false
	}

	emp, storedIsEmployee := stored.Employee()
	prov, storedIsProvider := stored.Provider()
	if (in.Employee != nil) != storedIsEmployee || (in.Provider != nil) != storedIsProvider {
		return false
	}

	if storedIsEmployee {
		if in.Employee.Role != emp.Role || in.Employee.Department != emp.Department {
			return false
		}
		if in.Employee.Salary == nil || *in.Employee.Salary != emp.Salary {
			return false
		}
	}
	if storedIsProvider {
		if in.Provider.Company != prov.Company ||
			in.Provider.ServiceType != prov.ServiceType ||
			in.Provider.Phone != prov.Phone {
			return false
		}
	}
	return true
}

// MergeUser copia los campos editables de src sobre target. Nunca toca el id,
// la contraseña ni la fecha de creación. Si los tipos de usuario difieren
// devuelve BUSINESS_RULE y target queda intacto.
func MergeUser(target, src *entity.User) error {
	switch s := src.Details.(type) {
	case *entity.EmployeeData:
		t, ok := target.Employee()
		if !ok {
			return crossTypeMerge()
		}
		copyNames(target, src)
		t.Role = s.Role
		t.Department = s.Department
		t.Salary = s.Salary
	case *entity.ProviderData:
		t, ok := target.Provider()
		if !ok {
			return crossTypeMerge()
		}
		copyNames(target, src)
		t.Company = s.Company
		t.ServiceType = s.ServiceType
		t.Phone = s.Phone
	default:
		return crossTypeMerge()
	}
	return nil
}

func copyNames(target, src *entity.User) {
	target.FirstName = src.FirstName
	target.LastName = src.LastName
	target.MiddleName = src.MiddleName
	target.Email = src.Email
	target.Status = src.Status
}

func crossTypeMerge() error {
	return domain.Business("No se puede aplicar cambios entre tipos de usuario diferentes.")
}
