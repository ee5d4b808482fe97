package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Usuarios-api/internal/application/usecase"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

var _ usecase.UsuariosTxRunner = (*TxRunner)(nil)

// TxBeginner lo cumple *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunUsuarios inicia una transacción, ejecuta fn con un repositorio atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunUsuarios(ctx context.Context, fn func(repo repository.UsuariosRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUsuariosRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
