package validation

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

const minStock = 10

// Categorías aceptadas, en mayúsculas y forma NFC.
var allowedCategories = map[string]struct{}{
	"BLANCOS":      {},
	"ALIMENTOS":    {},
	"ELECTRÓNICOS": {},
}

// ValidateProduct valida un candidato a producto.
func ValidateProduct(in *entity.ProductInput) error {
	if in == nil {
		return domain.Business("El producto no puede estar vacio")
	}

	if err := requireText("name", in.Name, "Nombre"); err != nil {
		return err
	}
	if err := requireText("category", in.Category, "Categoria"); err != nil {
		return err
	}
	if err := requireText("description", in.Description, "Descrpción"); err != nil {
		return err
	}
	if err := requireText("provider", in.Provider, "Proveedor"); err != nil {
		return err
	}
	if err := requireText("image", in.Image, "Imágen"); err != nil {
		return err
	}

	if in.Price == nil || *in.Price <= 0 {
		return domain.BusinessField("price", "El precio debe ser mayor a 0")
	}
	if in.Stock == nil || *in.Stock <= minStock {
		return domain.BusinessField("stock", "El stock debe ser mayor a 10")
	}
	stock := decimal.NewFromFloat(*in.Stock)
	if !stock.IsInteger() {
		return domain.BusinessField("stock", "El stock debe contener un número entero")
	}
	// El stock se guarda como int64.
	if stock.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return domain.BusinessField("stock", "El stock excede el máximo permitido")
	}
	if !IsAllowedCategory(in.Category) {
		return domain.BusinessField("category", "La categoría no es valida. Usa: BLANCOS, ALIMENTOS, ELECTRÓNICOS")
	}
	return nil
}

// IsAllowedCategory compara sin distinguir mayúsculas y normalizando acentos
// compuestos, de modo que "electrónicos" y "ELECTRÓNICOS" son válidos.
func IsAllowedCategory(category string) bool {
	// Un Caser no es seguro entre goroutines; se crea por llamada.
	upper := cases.Upper(language.Spanish).String(norm.NFC.String(category))
	_, ok := allowedCategories[norm.NFC.String(upper)]
	return ok
}

// ProductUnchanged informa si el candidato coincide campo a campo con el producto almacenado.
func ProductUnchanged(in *entity.ProductInput, stored *entity.Product) bool {
	if in.Name != stored.Name ||
		in.Category != stored.Category ||
		in.Description != stored.Description ||
		in.Image != stored.Image ||
		in.Provider != stored.Provider ||
		in.Status != stored.Status {
		return false
	}
	if in.Price == nil || *in.Price != stored.Price {
		return false
	}
	if in.Stock == nil || *in.Stock != float64(stored.Stock) {
		return false
	}
	return true
}

// MergeProduct copia los campos mutables de src sobre target.
func MergeProduct(target, src *entity.Product) {
	target.Name = src.Name
	target.Price = src.Price
	target.Stock = src.Stock
	target.Category = src.Category
	target.Description = src.Description
	target.Image = src.Image
	target.Provider = src.Provider
	target.Status = src.Status
}
