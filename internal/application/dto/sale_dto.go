package dto

import (
	"time"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// CustomerInfoRequest datos del cliente al momento de la venta.
type CustomerInfoRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductSoldRequest producto vendido.
type ProductSoldRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int64   `json:"quantity"`
	SubTotal *float64 `json:"subTotal"`
}

// SaleRequest entrada para registrar una venta.
type SaleRequest struct {
	CustomerInfo  *CustomerInfoRequest `json:"customerInfo"`
	ProductSold   *ProductSoldRequest  `json:"productSold"`
	PaymentMethod string               `json:"paymentMethod"`
	TotalAmount   *float64             `json:"totalAmount"`
	Status        string               `json:"status"`
	SaleDate      *time.Time           `json:"saleDate"`
}

// ToInput convierte la petición en el candidato de dominio.
func (r *SaleRequest) ToInput() *entity.SaleInput {
	if r == nil {
		return nil
	}
	in := &entity.SaleInput{
		PaymentMethod: r.PaymentMethod,
		TotalAmount:   r.TotalAmount,
		Status:        r.Status,
		SaleDate:      r.SaleDate,
	}
	if r.CustomerInfo != nil {
		in.CustomerInfo = &entity.CustomerInfo{
			ID:    r.CustomerInfo.ID,
			Name:  r.CustomerInfo.Name,
			Email: r.CustomerInfo.Email,
		}
	}
	if r.ProductSold != nil {
		in.ProductSold = &entity.ProductSoldInput{
			ID:       r.ProductSold.ID,
			Name:     r.ProductSold.Name,
			Price:    r.ProductSold.Price,
			Quantity: r.ProductSold.Quantity,
			SubTotal: r.ProductSold.SubTotal,
		}
	}
	return in
}

// UpdateSaleRequest solo el estatus de una venta es editable.
type UpdateSaleRequest struct {
	Status string `json:"status"`
}

// SaleResponse salida resumida de una venta.
type SaleResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"` // cliente
	Payment string    `json:"payment"`
	Total   float64   `json:"total"`
	Status  string    `json:"status"`
	Sale    time.Time `json:"sale"` // fecha de venta
}

// NewSaleResponse proyecta la entidad.
func NewSaleResponse(s *entity.Sale) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:      s.ID,
		Name:    s.CustomerInfo.Name,
		Payment: s.PaymentMethod,
		Total:   s.TotalAmount,
		Status:  s.Status,
		Sale:    s.SaleDate,
	}
}

// NewSaleResponses proyecta una lista.
func NewSaleResponses(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *NewSaleResponse(s))
	}
	return out
}
