package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/repository"
	"github.com/jhoicas/destinity-erp/internal/domain/validation"
)

const saleOwner = "de la venta"

// ReceiptRenderer genera el comprobante PDF de una venta.
type ReceiptRenderer interface {
	Render(sale *entity.Sale) ([]byte, error)
}

// SaleUseCase casos de uso de ventas. Cliente y producto se guardan como
// copia histórica; solo el estatus es editable.
type SaleUseCase struct {
	repo     repository.SaleRepository
	receipts ReceiptRenderer
	opts     options
}

// NewSaleUseCase construye el caso de uso. receipts puede ser nil si no se
// exponen comprobantes.
func NewSaleUseCase(repo repository.SaleRepository, receipts ReceiptRenderer, opts ...Option) *SaleUseCase {
	return &SaleUseCase{repo: repo, receipts: receipts, opts: buildOptions("sale_usecase", opts)}
}

// Create valida, completa valores por defecto y registra una venta.
// Devuelve (nil, nil) si el almacén no reporta el id insertado.
func (uc *SaleUseCase) Create(ctx context.Context, in *entity.SaleInput) (*dto.SaleResponse, error) {
	if err := validation.ValidateSale(in); err != nil {
		return nil, err
	}

	sale := uc.fromInput(in)
	id, err := uc.repo.Create(ctx, sale)
	if err != nil {
		return nil, err
	}
	if id == "" {
		uc.opts.log.Warn().Str("sale_id", sale.ID).Msg("no se pudo guardar la venta")
		return nil, nil
	}

	created, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}
	uc.opts.log.Info().Str("sale_id", created.ID).Float64("total", created.TotalAmount).Msg("venta creada")
	return dto.NewSaleResponse(created), nil
}

// fromInput arma la venta: subtotal = precio x cantidad y total = subtotal
// cuando no vienen en la petición, ambos redondeados a 2 decimales.
func (uc *SaleUseCase) fromInput(in *entity.SaleInput) *entity.Sale {
	now := uc.opts.now()
	ps := in.ProductSold

	price := decimal.NewFromFloat(*ps.Price)
	subTotal := price.Mul(decimal.NewFromInt(*ps.Quantity)).Round(2)
	if ps.SubTotal != nil {
		subTotal = decimal.NewFromFloat(*ps.SubTotal)
	}
	total := subTotal
	if in.TotalAmount != nil {
		total = decimal.NewFromFloat(*in.TotalAmount)
	}

	sale := &entity.Sale{
		ID:           uc.repo.NextID(),
		CustomerInfo: *in.CustomerInfo,
		ProductSold: entity.ProductSold{
			ID:       ps.ID,
			Name:     ps.Name,
			Price:    *ps.Price,
			Quantity: *ps.Quantity,
			SubTotal: subTotal.InexactFloat64(),
		},
		PaymentMethod: in.PaymentMethod,
		TotalAmount:   total.InexactFloat64(),
		Status:        in.Status,
		SaleDate:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if blank(sale.Status) {
		sale.Status = entity.DefaultSaleStatus
	}
	if in.SaleDate != nil && !in.SaleDate.IsZero() {
		sale.SaleDate = *in.SaleDate
	}
	return sale
}

// List lista ventas con paginación.
func (uc *SaleUseCase) List(ctx context.Context, page, size int) ([]dto.SaleResponse, error) {
	page, size = normalizePage(page, size)
	sales, err := uc.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		uc.opts.log.Warn().Int("page", page).Msg("no hay ventas registradas")
		return nil, domain.NotFound("No hay ventas registradas")
	}
	return dto.NewSaleResponses(sales), nil
}

// Count total de ventas registradas.
func (uc *SaleUseCase) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSaleResponse(sale), nil
}

// ListByStatus lista ventas con el estatus indicado.
func (uc *SaleUseCase) ListByStatus(ctx context.Context, status string) ([]dto.SaleResponse, error) {
	if blank(status) {
		return nil, domain.InvalidInput("estatus", saleOwner)
	}
	sales, err := uc.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.NotFound("No hay ventas con el estatus " + status)
	}
	return dto.NewSaleResponses(sales), nil
}

// Search busca ventas por cliente, método de pago o estatus.
func (uc *SaleUseCase) Search(ctx context.Context, text string) ([]dto.SaleResponse, error) {
	if blank(text) {
		return nil, domain.InvalidInput("texto de búsqueda", saleOwner)
	}
	sales, err := uc.repo.SearchByText(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.NotFound("No se encontraron ventas con el texto proporcionado")
	}
	return dto.NewSaleResponses(sales), nil
}

// Update cambia el estatus de una venta.
func (uc *SaleUseCase) Update(ctx context.Context, id, status string) (*dto.SaleResponse, error) {
	existing, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if validation.SaleUnchanged(status, existing) {
		uc.opts.log.Warn().Str("sale_id", id).Msg("no se detectaron cambios")
		return nil, domain.Business("No se detectaron cambios. La venta no fue modificada")
	}
	if err := validation.ValidateSaleStatus(status); err != nil {
		return nil, err
	}
	validation.MergeSale(existing, status)
	existing.UpdatedAt = uc.opts.now()

	modified, err := uc.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		uc.opts.log.Warn().Str("sale_id", id).Msg("no se pudo actualizar la venta")
		return nil, nil
	}

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.opts.log.Info().Str("sale_id", id).Str("status", status).Msg("venta actualizada")
	return dto.NewSaleResponse(updated), nil
}

// Delete elimina una venta existente; false sin error si el almacén no borró nada.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uc.findExisting(ctx, id); err != nil {
		return false, err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted == 0 {
		uc.opts.log.Warn().Str("sale_id", id).Msg("error al intentar eliminar la venta")
		return false, nil
	}
	uc.opts.log.Info().Str("sale_id", id).Msg("venta eliminada")
	return true, nil
}

// Receipt genera el comprobante PDF de una venta existente.
func (uc *SaleUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	sale, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if uc.receipts == nil {
		return nil, domain.Business("Los comprobantes no están habilitados")
	}
	return uc.receipts.Render(sale)
}

func (uc *SaleUseCase) findExisting(ctx context.Context, id string) (*entity.Sale, error) {
	if blank(id) {
		return nil, domain.InvalidInput("id", saleOwner)
	}
	sale, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NotFound("No existe la venta con el identificador proporcionado")
	}
	return sale, nil
}
