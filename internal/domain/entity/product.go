package entity

import "time"

// DefaultProductStatus estatus asignado al crear un producto sin estatus.
const DefaultProductStatus = "Disponible"

// Product representa un producto del inventario (colección inventory).
type Product struct {
	ID          string
	Name        string
	Price       float64
	Stock       int64
	Category    string // BLANCOS, ALIMENTOS, ELECTRÓNICOS
	Description string
	Image       string
	Provider    string // nombre del proveedor, no referencia
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput candidato a producto antes de validar. Stock llega como número
// JSON y puede traer decimales; la validación exige que sea entero.
type ProductInput struct {
	Name        string
	Price       *float64
	Stock       *float64
	Category    string
	Description string
	Image       string
	Provider    string
	Status      string
}

// Product construye la entidad a partir del candidato ya validado.
func (in *ProductInput) Product() *Product {
	p := &Product{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Provider:    in.Provider,
		Status:      in.Status,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = int64(*in.Stock)
	}
	return p
}
