package dto

import (
	"time"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// EmployeeDataRequest subdocumento de empleado.
type EmployeeDataRequest struct {
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Salary     *float64 `json:"salary"`
}

// ProviderDataRequest subdocumento de proveedor.
type ProviderDataRequest struct {
	Company     string `json:"company"`
	ServiceType string `json:"serviceType"`
	Phone       string `json:"phone"`
}

// UserRequest entrada para crear o actualizar un usuario (password en texto, se hashea en use case).
type UserRequest struct {
	FirstName    string               `json:"firstName"`
	LastName     string               `json:"lastName"`
	MiddleName   string               `json:"middleName"`
	Email        string               `json:"email"`
	Password     string               `json:"password"`
	Status       string               `json:"status"`
	EmployeeData *EmployeeDataRequest `json:"employeeData"`
	ProviderData *ProviderDataRequest `json:"providerData"`
}

// ToInput convierte la petición en el candidato de dominio.
func (r *UserRequest) ToInput() *entity.UserInput {
	if r == nil {
		return nil
	}
	in := &entity.UserInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		Email:      r.Email,
		Password:   r.Password,
		Status:     r.Status,
	}
	if r.EmployeeData != nil {
		in.Employee = &entity.EmployeeInput{
			Role:       r.EmployeeData.Role,
			Department: r.EmployeeData.Department,
			Salary:     r.EmployeeData.Salary,
		}
	}
	if r.ProviderData != nil {
		in.Provider = &entity.ProviderInput{
			Company:     r.ProviderData.Company,
			ServiceType: r.ProviderData.ServiceType,
			Phone:       r.ProviderData.Phone,
		}
	}
	return in
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	Email      string    `json:"email"`
	UserType   string    `json:"userType"`
	Role       string    `json:"role,omitempty"`
	Department string    `json:"department,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewUserResponse proyecta la entidad; role y department solo aplican a empleados.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	resp := &UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Email:      u.Email,
		UserType:   u.UserType(),
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if emp, ok := u.Employee(); ok {
		resp.Role = emp.Role
		resp.Department = emp.Department
	}
	return resp
}

// NewUserResponses proyecta una lista.
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *NewUserResponse(u))
	}
	return out
}
