package repository

import "math"

// Direction sentido de ordenamiento.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order propiedad y sentido de un criterio de ordenamiento.
type Order struct {
	Property  string
	Direction Direction
}

// Pageable solicitud de página: número (base 0), tamaño y criterios de orden.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Offset desplazamiento de filas correspondiente a la página.
// Satura en math.MaxInt en lugar de desbordar; nunca es negativo.
func (p Pageable) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Next devuelve la solicitud de la página siguiente con el mismo tamaño y orden.
func (p Pageable) Next() Pageable {
	p.Page++
	return p
}

// Page porción de resultados junto con el total de elementos.
type Page[T any] struct {
	Content []T
	Total   int64
	Number  int
	Size    int
}

// TotalPages número de páginas para Total y Size.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext indica si existe una página posterior.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages()-1
}

// HasPrevious indica si existe una página anterior.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}
