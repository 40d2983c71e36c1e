package dto

import "github.com/jhoicas/destinity-erp/internal/domain/entity"

// ProductRequest entrada para crear o actualizar un producto. Stock se recibe
// como número para poder rechazar valores con decimales.
type ProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *float64 `json:"stock"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Provider    string   `json:"provider"`
	Status      string   `json:"status"`
}

// ToInput convierte la petición en el candidato de dominio.
func (r *ProductRequest) ToInput() *entity.ProductInput {
	if r == nil {
		return nil
	}
	return &entity.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
		Description: r.Description,
		Image:       r.Image,
		Provider:    r.Provider,
		Status:      r.Status,
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Provider    string  `json:"provider"`
	Status      string  `json:"status"`
}

// NewProductResponse proyecta la entidad.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Provider:    p.Provider,
		Status:      p.Status,
	}
}

// NewProductResponses proyecta una lista.
func NewProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *NewProductResponse(p))
	}
	return out
}
