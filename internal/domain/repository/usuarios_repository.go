package repository

import (
	"context"

	"github.com/jhoicas/Usuarios-api/internal/domain/entity"
)

// UsuariosRepository define el puerto de persistencia para Usuarios (DIP).
type UsuariosRepository interface {
	// Create asigna un ID nuevo y persiste. Falla con domain.ErrInvalidArgument si u ya trae ID.
	Create(ctx context.Context, u *entity.Usuarios) (*entity.Usuarios, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// FindByID devuelve nil, nil si no existe.
	FindByID(ctx context.Context, id int64) (*entity.Usuarios, error)
	FindAll(ctx context.Context, p Pageable) (Page[*entity.Usuarios], error)
	// Save reemplaza por completo el registro con el ID de u (upsert).
	Save(ctx context.Context, u *entity.Usuarios) (*entity.Usuarios, error)
	// DeleteByID no falla si el registro no existe.
	DeleteByID(ctx context.Context, id int64) error
}

// UsuariosSortProperties propiedades válidas para ordenar listados de usuarios.
var UsuariosSortProperties = map[string]string{
	"id":       "id",
	"email":    "email",
	"password": "password",
}
