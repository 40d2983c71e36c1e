package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/repository"
	"github.com/jhoicas/destinity-erp/internal/domain/validation"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

// PasswordHasher calcula el hash de una contraseña antes de persistirla.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

const userOwner = "del usuario"

// UserUseCase aplica reglas de negocio para usuarios (empleados y proveedores).
type UserUseCase struct {
	repo   repository.UserRepository
	hasher PasswordHasher
	opts   options
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, hasher PasswordHasher, opts ...Option) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, opts: buildOptions("user_usecase", opts)}
}

func (uc *UserUseCase) log() *logger.Logger { return uc.opts.log }

// CreateEmployee valida y registra un empleado. Devuelve (nil, nil) si el
// almacén no reporta el id insertado.
func (uc *UserUseCase) CreateEmployee(ctx context.Context, in *entity.UserInput) (*dto.UserResponse, error) {
	return uc.create(ctx, in, entity.UserTypeEmployee)
}

// CreateProvider valida y registra un proveedor. Igual que CreateEmployee, la
// contraseña se guarda con hash.
func (uc *UserUseCase) CreateProvider(ctx context.Context, in *entity.UserInput) (*dto.UserResponse, error) {
	return uc.create(ctx, in, entity.UserTypeProvider)
}

func (uc *UserUseCase) create(ctx context.Context, in *entity.UserInput, userType string) (*dto.UserResponse, error) {
	if in != nil && blank(in.Status) {
		in.Status = entity.DefaultUserStatus
	}
	if err := validation.ValidateUser(in); err != nil {
		return nil, err
	}
	if in.UserType() != userType {
		if userType == entity.UserTypeEmployee {
			return nil, domain.BusinessField("employeeData", "Los datos del empleado son requeridos")
		}
		return nil, domain.BusinessField("providerData", "Los datos del proveedor son requeridos")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	now := uc.opts.now()
	user := in.User()
	user.ID = uc.repo.NextID()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := uc.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if id == "" {
		uc.log().Warn().Str("user_id", user.ID).Str("user_type", userType).Msg("no se pudo guardar el usuario")
		return nil, nil
	}

	created, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}
	uc.log().Info().Str("user_id", created.ID).Str("user_type", userType).Msg("usuario creado")
	return dto.NewUserResponse(created), nil
}

// List lista usuarios paginados de un tipo (employee por defecto).
func (uc *UserUseCase) List(ctx context.Context, page, size int, userType string) ([]dto.UserResponse, error) {
	page, size = normalizePage(page, size)
	if blank(userType) {
		userType = entity.UserTypeEmployee
	}
	users, err := uc.repo.List(ctx, page, size, userType)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		uc.log().Warn().Int("page", page).Str("user_type", userType).Msg("no hay usuarios registrados")
		return nil, domain.NotFound("No hay usuarios registrados")
	}
	uc.log().Info().Int("count", len(users)).Msg("usuarios obtenidos")
	return dto.NewUserResponses(users), nil
}

// Count total de usuarios registrados.
func (uc *UserUseCase) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// GetByEmail obtiene un usuario por correo.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	if blank(email) {
		return nil, domain.InvalidInput("correo", userOwner)
	}
	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log().Warn().Str("email", email).Msg("usuario no encontrado por correo")
		return nil, domain.NotFound("No existe la usuario con el correo proporcionado")
	}
	return dto.NewUserResponse(user), nil
}

// ListByStatus lista usuarios de un tipo con el estatus indicado.
func (uc *UserUseCase) ListByStatus(ctx context.Context, status, userType string) ([]dto.UserResponse, error) {
	if blank(status) {
		return nil, domain.InvalidInput("estatus", userOwner)
	}
	if blank(userType) {
		userType = entity.UserTypeEmployee
	}
	users, err := uc.repo.FindByStatus(ctx, status, userType)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.NotFound("No hay usuarios con el estatus " + status)
	}
	return dto.NewUserResponses(users), nil
}

// ListByDepartment lista empleados de un departamento.
func (uc *UserUseCase) ListByDepartment(ctx context.Context, department string) ([]dto.UserResponse, error) {
	if blank(department) {
		return nil, domain.InvalidInput("departamento", "del empleado")
	}
	users, err := uc.repo.FindByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.NotFound("No hay empleados en el departamento " + department)
	}
	return dto.NewUserResponses(users), nil
}

// ListByService lista proveedores por tipo de servicio.
func (uc *UserUseCase) ListByService(ctx context.Context, service string) ([]dto.UserResponse, error) {
	if blank(service) {
		return nil, domain.InvalidInput("servicio", "del proveedor")
	}
	users, err := uc.repo.FindByServiceType(ctx, service)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.NotFound("No hay proveedores del servicio " + service)
	}
	return dto.NewUserResponses(users), nil
}

// SearchEmployees busca empleados por coincidencia parcial en nombre y correo.
func (uc *UserUseCase) SearchEmployees(ctx context.Context, text string) ([]dto.UserResponse, error) {
	if blank(text) {
		return nil, domain.InvalidInput("texto de búsqueda", "del empleado")
	}
	users, err := uc.repo.SearchByText(ctx, text, entity.UserTypeEmployee)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.NotFound("No se encontraron empleados con el texto proporcionado")
	}
	return dto.NewUserResponses(users), nil
}

// Update valida y aplica cambios sobre un usuario existente. Un payload sin
// cambios es BUSINESS_RULE. Devuelve (nil, nil) si el almacén no modificó nada.
func (uc *UserUseCase) Update(ctx context.Context, id string, in *entity.UserInput) (*dto.UserResponse, error) {
	existing, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, validation.ValidateUser(nil)
	}
	if validation.UserUnchanged(in, existing) {
		uc.log().Warn().Str("user_id", id).Msg("no se detectaron cambios")
		return nil, domain.Business("No se detectaron cambios. El usuario no fue modificado")
	}
	if err := validation.ValidateUser(in); err != nil {
		return nil, err
	}
	if err := validation.MergeUser(existing, in.User()); err != nil {
		return nil, err
	}
	existing.UpdatedAt = uc.opts.now()

	modified, err := uc.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		uc.log().Warn().Str("user_id", id).Msg("no se pudo actualizar el usuario")
		return nil, nil
	}

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.log().Info().Str("user_id", id).Msg("usuario actualizado")
	return dto.NewUserResponse(updated), nil
}

// Delete elimina un usuario existente. Si el almacén no borra nada se
// registra y se devuelve false, sin error.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uc.findExisting(ctx, id); err != nil {
		return false, err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted == 0 {
		uc.log().Warn().Str("user_id", id).Msg("error al intentar eliminar el usuario")
		return false, nil
	}
	uc.log().Info().Str("user_id", id).Msg("usuario eliminado")
	return true, nil
}

func (uc *UserUseCase) findExisting(ctx context.Context, id string) (*entity.User, error) {
	if blank(id) {
		return nil, domain.InvalidInput("id", userOwner)
	}
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log().Warn().Str("user_id", id).Msg("usuario no encontrado")
		return nil, domain.NotFound("No existe el usuario con el identificador proporcionado")
	}
	return user, nil
}
