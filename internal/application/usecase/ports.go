package usecase

import (
	"context"

	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

// UsuariosTxRunner ejecuta fn dentro de una transacción, con un repositorio atado a ella.
type UsuariosTxRunner interface {
	RunUsuarios(ctx context.Context, fn func(repo repository.UsuariosRepository) error) error
}
