package repository

import (
	"context"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia, incluido
// un id con formato inválido.
type UserRepository interface {
	NextID() string
	// Create inserta y devuelve el id asignado; "" si el almacén no lo reporta.
	Create(ctx context.Context, user *entity.User) (string, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// List pagina usuarios; userType vacío no filtra.
	List(ctx context.Context, page, pageSize int, userType string) ([]*entity.User, error)
	FindByStatus(ctx context.Context, status, userType string) ([]*entity.User, error)
	FindByDepartment(ctx context.Context, department string) ([]*entity.User, error)
	FindByServiceType(ctx context.Context, serviceType string) ([]*entity.User, error)
	// SearchByText busca coincidencias parciales sin distinguir mayúsculas en
	// nombre, apellidos y correo.
	SearchByText(ctx context.Context, text, userType string) ([]*entity.User, error)
	// Update reemplaza los campos mutables y devuelve la cantidad de documentos modificados.
	Update(ctx context.Context, user *entity.User) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
