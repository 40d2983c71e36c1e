package entity

import "time"

// DefaultSaleStatus estatus asignado al crear una venta sin estatus.
const DefaultSaleStatus = "Completada"

// CustomerInfo copia de los datos del cliente al momento de la venta.
type CustomerInfo struct {
	ID    string
	Name  string
	Email string
}

// ProductSold copia del producto vendido al momento de la venta. No se
// actualiza si el producto cambia después.
type ProductSold struct {
	ID       string
	Name     string
	Price    float64
	Quantity int64
	SubTotal float64
}

// Sale representa una venta (colección sales).
type Sale struct {
	ID            string
	CustomerInfo  CustomerInfo
	ProductSold   ProductSold
	PaymentMethod string
	TotalAmount   float64
	Status        string
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductSoldInput detalle del producto tal como llega en la petición.
type ProductSoldInput struct {
	ID       string
	Name     string
	Price    *float64
	Quantity *int64
	SubTotal *float64
}

// SaleInput candidato a venta antes de validar.
type SaleInput struct {
	CustomerInfo  *CustomerInfo
	ProductSold   *ProductSoldInput
	PaymentMethod string
	TotalAmount   *float64
	Status        string
	SaleDate      *time.Time
}
