package validation

import (
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// ValidateSale valida una venta nueva: cliente y producto presentes, textos
// seguros, precio y cantidad positivos. Subtotal y total son opcionales; si
// faltan se calculan al crear.
func ValidateSale(in *entity.SaleInput) error {
	if in == nil {
		return domain.Business("La venta no puede estar vacia")
	}
	if in.CustomerInfo == nil {
		return domain.BusinessField("customerInfo", "La venta debe incluir los datos del cliente")
	}
	if in.ProductSold == nil {
		return domain.BusinessField("productSold", "La venta debe incluir el producto vendido")
	}

	if err := requireText("customerInfo.name", in.CustomerInfo.Name, "Nombre del cliente"); err != nil {
		return err
	}
	if err := requireText("customerInfo.email", in.CustomerInfo.Email, "Correo del cliente"); err != nil {
		return err
	}
	if !emailPattern.MatchString(in.CustomerInfo.Email) {
		return domain.BusinessField("customerInfo.email", "El correo electrónico no tiene un formato válido.")
	}
	if err := requireText("productSold.name", in.ProductSold.Name, "Nombre del producto"); err != nil {
		return err
	}
	if err := requireText("payment", in.PaymentMethod, "Método de pago"); err != nil {
		return err
	}

	if in.ProductSold.Price == nil || *in.ProductSold.Price <= 0 {
		return domain.BusinessField("productSold.price", "El precio del producto debe ser mayor a 0")
	}
	if in.ProductSold.Quantity == nil || *in.ProductSold.Quantity <= 0 {
		return domain.BusinessField("productSold.quantity", "La cantidad vendida debe ser mayor a 0")
	}
	if in.TotalAmount != nil && *in.TotalAmount <= 0 {
		return domain.BusinessField("total", "El total de la venta debe ser mayor a 0")
	}
	return nil
}

// ValidateSaleStatus valida el único campo editable de una venta.
func ValidateSaleStatus(status string) error {
	return requireText("status", status, "Estatus")
}

// SaleUnchanged informa si el nuevo estatus coincide con el almacenado.
func SaleUnchanged(status string, stored *entity.Sale) bool {
	return status == stored.Status
}

// MergeSale aplica el nuevo estatus. Los datos de cliente y producto son una
// copia histórica y no se editan.
func MergeSale(target *entity.Sale, status string) {
	target.Status = status
}
