package dto

import "github.com/shopspring/decimal"

// PageRequest página solicitada (1-based) en listados.
type PageRequest struct {
	Page int `query:"page"`
}

// DefaultPage aplica valores por defecto si Page es cero o negativa.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
}

// Pagination metadatos de página: TotalPages = ceil(Total/PageSize), mínimo 1.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination calcula las páginas y ajusta page al rango [1, TotalPages].
func NewPagination(total, pageSize, page int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	p := Pagination{PageSize: pageSize, Total: total, TotalPages: pages}
	p.Page = p.Clamp(page)
	return p
}

// Clamp ajusta una página al rango válido.
func (p Pagination) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if page > p.TotalPages {
		return p.TotalPages
	}
	return page
}

// HasPrev indica si existe página anterior.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext indica si existe página siguiente.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// Prev página anterior (acotada).
func (p Pagination) Prev() int { return p.Clamp(p.Page - 1) }

// Next página siguiente (acotada).
func (p Pagination) Next() int { return p.Clamp(p.Page + 1) }

// FirstNumber número de fila del primer registro de la página.
func (p Pagination) FirstNumber() int { return (p.Page-1)*p.PageSize + 1 }

// Pages lista de páginas para el control de paginación.
func (p Pagination) Pages() []int {
	out := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		out = append(out, i)
	}
	return out
}

// PageResult registros de una página más los totales que reporta el backend.
type PageResult[T any] struct {
	Records     []T             `json:"records"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Pagination
}

// EmptyPage resultado vacío (total 0, página 1) para degradar ante fallos.
func EmptyPage[T any](pageSize int) *PageResult[T] {
	return &PageResult[T]{Records: []T{}, Pagination: NewPagination(0, pageSize, 1)}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
