package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/validation"
)

func saleInput() *entity.SaleInput {
	return &entity.SaleInput{
		CustomerInfo: &entity.CustomerInfo{ID: "c1", Name: "María Gómez", Email: "maria@cliente.mx"},
		ProductSold: &entity.ProductSoldInput{
			ID:       "p1",
			Name:     "Sábana King",
			Price:    ptrFloat(499.90),
			Quantity: ptrInt(2),
		},
		PaymentMethod: "Tarjeta",
	}
}

func TestValidateSale_Valida(t *testing.T) {
	assert.NoError(t, validation.ValidateSale(saleInput()))
}

func TestValidateSale_Reglas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *entity.SaleInput)
		msg    string
	}{
		{"sin cliente", func(in *entity.SaleInput) { in.CustomerInfo = nil }, "La venta debe incluir los datos del cliente"},
		{"sin producto", func(in *entity.SaleInput) { in.ProductSold = nil }, "La venta debe incluir el producto vendido"},
		{"correo inválido", func(in *entity.SaleInput) { in.CustomerInfo.Email = "maria" }, "El correo electrónico no tiene un formato válido."},
		{"sin método de pago", func(in *entity.SaleInput) { in.PaymentMethod = "" }, "El campo Método de pago no puede estar vacio"},
		{"cantidad cero", func(in *entity.SaleInput) { in.ProductSold.Quantity = ptrInt(0) }, "La cantidad vendida debe ser mayor a 0"},
		{"precio ausente", func(in *entity.SaleInput) { in.ProductSold.Price = nil }, "El precio del producto debe ser mayor a 0"},
		{"total negativo", func(in *entity.SaleInput) { in.TotalAmount = ptrFloat(-5) }, "El total de la venta debe ser mayor a 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := saleInput()
			tc.mutate(in)
			assertBusiness(t, validation.ValidateSale(in), tc.msg)
		})
	}
}

func TestSaleStatus(t *testing.T) {
	stored := &entity.Sale{Status: "Completada"}

	assert.NoError(t, validation.ValidateSaleStatus("Cancelada"))
	assertBusiness(t, validation.ValidateSaleStatus(""), "El campo Estatus no puede estar vacio")

	assert.True(t, validation.SaleUnchanged("Completada", stored))
	assert.False(t, validation.SaleUnchanged("Cancelada", stored))

	validation.MergeSale(stored, "Cancelada")
	assert.Equal(t, "Cancelada", stored.Status)
}
