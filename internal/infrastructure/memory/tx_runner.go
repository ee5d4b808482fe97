package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

// TxRunner serializa los callbacks transaccionales sobre el almacén en memoria.
// No hay rollback: lo escrito por fn queda aplicado aunque fn devuelva error.
type TxRunner struct {
	mu   sync.Mutex
	repo *UsuariosRepo
}

// NewTxRunner construye el runner sobre repo.
func NewTxRunner(repo *UsuariosRepo) *TxRunner {
	return &TxRunner{repo: repo}
}

// RunUsuarios ejecuta fn con el repositorio en exclusión mutua con otras transacciones.
func (t *TxRunner) RunUsuarios(ctx context.Context, fn func(repo repository.UsuariosRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(t.repo)
}
