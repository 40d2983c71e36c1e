package repository

import (
	"context"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	NextID() string
	Create(ctx context.Context, product *entity.Product) (string, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, page, pageSize int) ([]*entity.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	SearchByText(ctx context.Context, text string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
