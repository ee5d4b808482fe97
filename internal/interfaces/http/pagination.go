package http

import (
	"fmt"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

// PaginationConfig tamaños de página aceptados en los listados.
type PaginationConfig struct {
	DefaultSize int
	MaxSize     int
}

// parsePageable lee page (base 0), size y uno o varios sort=prop[,prop...][,asc|desc].
func parsePageable(c *fiber.Ctx, cfg PaginationConfig, allowed map[string]string) (repository.Pageable, error) {
	p := repository.Pageable{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", cfg.DefaultSize),
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = cfg.DefaultSize
	}
	if cfg.MaxSize > 0 && p.Size > cfg.MaxSize {
		p.Size = cfg.MaxSize
	}
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		p.Page = math.MaxInt / p.Size
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		orders, err := parseSort(string(raw), allowed)
		if err != nil {
			return p, err
		}
		p.Sort = append(p.Sort, orders...)
	}
	return p, nil
}

func parseSort(raw string, allowed map[string]string) ([]repository.Order, error) {
	parts := strings.Split(raw, ",")
	dir := repository.Asc
	if last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1])); last == "asc" || last == "desc" {
		if last == "desc" {
			dir = repository.Desc
		}
		parts = parts[:len(parts)-1]
	}
	orders := make([]repository.Order, 0, len(parts))
	for _, prop := range parts {
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		if _, ok := allowed[prop]; !ok {
			return nil, fmt.Errorf("propiedad de orden desconocida: %s", prop)
		}
		orders = append(orders, repository.Order{Property: prop, Direction: dir})
	}
	return orders, nil
}
