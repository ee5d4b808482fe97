package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Usuarios-api/internal/domain"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

// orderByClause traduce los criterios de orden a SQL usando solo columnas de la lista blanca.
// Siempre termina en id para que la paginación sea estable.
func orderByClause(orders []repository.Order, columns map[string]string) (string, error) {
	parts := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		col, ok := columns[o.Property]
		if !ok {
			return "", fmt.Errorf("sort %q: %w", o.Property, domain.ErrInvalidArgument)
		}
		dir := "ASC"
		if o.Direction == repository.Desc {
			dir = "DESC"
		}
		if col == "id" {
			hasID = true
		}
		parts = append(parts, col+" "+dir)
	}
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", "), nil
}
