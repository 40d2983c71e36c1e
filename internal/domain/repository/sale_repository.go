package repository

import (
	"context"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	NextID() string
	Create(ctx context.Context, sale *entity.Sale) (string, error)
	FindByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, page, pageSize int) ([]*entity.Sale, error)
	FindByStatus(ctx context.Context, status string) ([]*entity.Sale, error)
	SearchByText(ctx context.Context, text string) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
