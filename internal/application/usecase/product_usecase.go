package usecase

import (
	"context"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/repository"
	"github.com/jhoicas/destinity-erp/internal/domain/validation"
)

const productOwner = "del producto"

// ProductUseCase casos de uso CRUD para productos del inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
	opts options
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, opts ...Option) *ProductUseCase {
	return &ProductUseCase{repo: repo, opts: buildOptions("product_usecase", opts)}
}

// Create valida y registra un producto. Devuelve (nil, nil) si el almacén no
// reporta el id insertado.
func (uc *ProductUseCase) Create(ctx context.Context, in *entity.ProductInput) (*dto.ProductResponse, error) {
	if in != nil && blank(in.Status) {
		in.Status = entity.DefaultProductStatus
	}
	if err := validation.ValidateProduct(in); err != nil {
		return nil, err
	}

	now := uc.opts.now()
	product := in.Product()
	product.ID = uc.repo.NextID()
	product.CreatedAt = now
	product.UpdatedAt = now

	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	if id == "" {
		uc.opts.log.Warn().Str("name", product.Name).Msg("no se pudo guardar el producto")
		return nil, nil
	}

	created, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}
	uc.opts.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("producto creado")
	return dto.NewProductResponse(created), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page, size int) ([]dto.ProductResponse, error) {
	page, size = normalizePage(page, size)
	products, err := uc.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		uc.opts.log.Warn().Int("page", page).Msg("no hay productos en el inventario")
		return nil, domain.NotFound("No hay productos en el inventario")
	}
	return dto.NewProductResponses(products), nil
}

// Count total de productos en inventario.
func (uc *ProductUseCase) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// ListByCategory lista productos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	if blank(category) {
		return nil, domain.InvalidInput("categoría", productOwner)
	}
	products, err := uc.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.NotFound("No hay productos en la categoría proporcionada")
	}
	return dto.NewProductResponses(products), nil
}

// Search busca productos por coincidencia parcial.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]dto.ProductResponse, error) {
	if blank(text) {
		return nil, domain.InvalidInput("texto de búsqueda", productOwner)
	}
	products, err := uc.repo.SearchByText(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.NotFound("No se encontraron productos con el texto proporcionado")
	}
	return dto.NewProductResponses(products), nil
}

// Update valida y aplica cambios sobre un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in *entity.ProductInput) (*dto.ProductResponse, error) {
	existing, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, validation.ValidateProduct(nil)
	}
	if validation.ProductUnchanged(in, existing) {
		uc.opts.log.Warn().Str("product_id", id).Msg("no se detectaron cambios")
		return nil, domain.Business("No se detectaron cambios. El producto no fue modificado")
	}
	if err := validation.ValidateProduct(in); err != nil {
		return nil, err
	}
	validation.MergeProduct(existing, in.Product())
	existing.UpdatedAt = uc.opts.now()

	modified, err := uc.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		uc.opts.log.Warn().Str("product_id", id).Msg("no se pudo actualizar el producto")
		return nil, nil
	}

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.opts.log.Info().Str("product_id", id).Msg("producto actualizado")
	return dto.NewProductResponse(updated), nil
}

// Delete elimina un producto existente; false sin error si el almacén no borró nada.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uc.findExisting(ctx, id); err != nil {
		return false, err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted == 0 {
		uc.opts.log.Warn().Str("product_id", id).Msg("error al intentar eliminar el producto")
		return false, nil
	}
	uc.opts.log.Info().Str("product_id", id).Msg("producto eliminado")
	return true, nil
}

func (uc *ProductUseCase) findExisting(ctx context.Context, id string) (*entity.Product, error) {
	if blank(id) {
		return nil, domain.InvalidInput("id", productOwner)
	}
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("No existe el producto con el identificador proporcionado")
	}
	return product, nil
}
