package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

func TestRender_GeneraPDF(t *testing.T) {
	sale := &entity.Sale{
		ID:            "64b7f0c2a1b2c3d4e5f60718",
		CustomerInfo:  entity.CustomerInfo{ID: "c1", Name: "María Gómez", Email: "maria@cliente.mx"},
		ProductSold:   entity.ProductSold{ID: "p1", Name: "Arroz 1kg", Price: 32.55, Quantity: 3, SubTotal: 97.65},
		PaymentMethod: "Efectivo",
		TotalAmount:   97.65,
		Status:        "Completada",
		SaleDate:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	out, err := NewReceiptGenerator("").Render(sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento inicia con la firma PDF")
}

func TestRender_VentaNula(t *testing.T) {
	_, err := NewReceiptGenerator("Tienda").Render(nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:         "$0.00",
		97.65:     "$97.65",
		1000:      "$1,000.00",
		1234567.5: "$1,234,567.50",
		-2500.126: "-$2,500.13",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in))
	}
}
