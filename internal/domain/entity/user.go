package entity

import "time"

// Tipos de usuario (discriminante de UserDetails).
const (
	UserTypeEmployee = "employee"
	UserTypeProvider = "provider"
)

// DefaultUserStatus estatus asignado al crear un usuario sin estatus.
const DefaultUserStatus = "Activo"

// UserDetails es la unión etiquetada de datos específicos del tipo de usuario.
// Solo *EmployeeData y *ProviderData la implementan.
type UserDetails interface {
	UserType() string
	isUserDetails()
}

// EmployeeData subdocumento de un empleado.
type EmployeeData struct {
	Role       string
	Department string
	Salary     float64
}

// ProviderData subdocumento de un proveedor.
type ProviderData struct {
	Company     string
	ServiceType string
	Phone       string // 10 caracteres
}

func (*EmployeeData) UserType() string { return UserTypeEmployee }
func (*EmployeeData) isUserDetails()   {}
func (*ProviderData) UserType() string { return UserTypeProvider }
func (*ProviderData) isUserDetails()   {}

// User representa un empleado o proveedor persistido en la colección hr.
// Details siempre contiene exactamente una variante.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	MiddleName   string
	Email        string
	PasswordHash string // bcrypt, nunca texto plano después de crear
	Status       string
	Details      UserDetails
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserType devuelve el discriminante derivado de Details.
func (u *User) UserType() string {
	if u == nil || u.Details == nil {
		return ""
	}
	return u.Details.UserType()
}

// Employee devuelve los datos de empleado si el usuario es empleado.
func (u *User) Employee() (*EmployeeData, bool) {
	emp, ok := u.Details.(*EmployeeData)
	return emp, ok
}

// Provider devuelve los datos de proveedor si el usuario es proveedor.
func (u *User) Provider() (*ProviderData, bool) {
	prov, ok := u.Details.(*ProviderData)
	return prov, ok
}

// FullName une las partes no vacías del nombre.
func (u *User) FullName() string {
	name := ""
	for _, part := range []string{u.FirstName, u.LastName, u.MiddleName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// EmployeeInput datos de empleado tal como llegan en una petición. Salary es
// puntero para distinguir "ausente" de 0.
type EmployeeInput struct {
	Role       string
	Department string
	Salary     *float64
}

// ProviderInput datos de proveedor tal como llegan en una petición.
type ProviderInput struct {
	Company     string
	ServiceType string
	Phone       string
}

// UserInput candidato a usuario antes de validar. Puede traer ambos subdocumentos
// o ninguno; la validación decide.
type UserInput struct {
	FirstName  string
	LastName   string
	MiddleName string
	Email      string
	Password   string
	Status     string
	Employee   *EmployeeInput
	Provider   *ProviderInput
}

// UserType devuelve el discriminante implícito en los subdocumentos presentes.
func (in *UserInput) UserType() string {
	switch {
	case in.Employee != nil && in.Provider == nil:
		return UserTypeEmployee
	case in.Provider != nil && in.Employee == nil:
		return UserTypeProvider
	default:
		return ""
	}
}

// Details construye la variante de UserDetails. Solo es válido después de validar.
func (in *UserInput) Details() UserDetails {
	switch {
	case in.Employee != nil:
		emp := &EmployeeData{Role: in.Employee.Role, Department: in.Employee.Department}
		if in.Employee.Salary != nil {
			emp.Salary = *in.Employee.Salary
		}
		return emp
	case in.Provider != nil:
		return &ProviderData{
			Company:     in.Provider.Company,
			ServiceType: in.Provider.ServiceType,
			Phone:       in.Provider.Phone,
		}
	default:
		return nil
	}
}

// User construye la entidad a partir del candidato ya validado. La contraseña
// no se copia: el hash lo calcula el caso de uso.
func (in *UserInput) User() *User {
	return &User{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
		Email:      in.Email,
		Status:     in.Status,
		Details:    in.Details(),
	}
}
