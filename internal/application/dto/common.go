package dto

// Valores por defecto de paginación.
const (
	DefaultPage     = 0
	DefaultPageSize = 20
)

// PageRequest paginación para listados (página desde 0).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize aplica valores por defecto: página negativa -> 0, tamaño <= 0 -> 20.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// PageResponse metadatos de página; viajan como encabezados X-Page, X-Page-Size y X-Total-Count.
type PageResponse struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse cuerpo de las operaciones de escritura.
type MessageResponse struct {
	Message string `json:"message"`
}
