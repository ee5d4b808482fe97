package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Usuarios-api/internal/domain"
	"github.com/jhoicas/Usuarios-api/internal/domain/entity"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

var _ repository.UsuariosRepository = (*UsuariosRepo)(nil)

const (
	insertUsuariosSQL = `INSERT INTO usuarios (email, password) VALUES ($1, $2) RETURNING id`
	existsUsuariosSQL = `SELECT EXISTS(SELECT 1 FROM usuarios WHERE id = $1)`
	selectUsuariosSQL = `SELECT id, email, password FROM usuarios WHERE id = $1`
	countUsuariosSQL  = `SELECT COUNT(*) FROM usuarios`
	listUsuariosSQL   = `SELECT id, email, password FROM usuarios ORDER BY %s LIMIT $1 OFFSET $2`
	upsertUsuariosSQL = `INSERT INTO usuarios (id, email, password) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, password = EXCLUDED.password`
	deleteUsuariosSQL = `DELETE FROM usuarios WHERE id = $1`
)

// UsuariosRepo implementación del puerto UsuariosRepository sobre PostgreSQL (usable con pool o tx).
type UsuariosRepo struct {
	q Querier
}

// NewUsuariosRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuariosRepository(q Querier) *UsuariosRepo {
	return &UsuariosRepo{q: q}
}

// Create inserta el usuario; el ID lo asigna sequence_generator.
func (r *UsuariosRepo) Create(ctx context.Context, u *entity.Usuarios) (*entity.Usuarios, error) {
	if u.ID != nil {
		return nil, fmt.Errorf("create usuarios: %w", domain.ErrInvalidArgument)
	}
	var id int64
	if err := r.q.QueryRow(ctx, insertUsuariosSQL, u.Email, u.Password).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert usuarios: %w", err)
	}
	out := u.Clone()
	out.ID = &id
	return out, nil
}

// ExistsByID indica si existe un usuario con ese ID.
func (r *UsuariosRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, existsUsuariosSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists usuarios: %w", err)
	}
	return exists, nil
}

// FindByID obtiene un usuario por ID; nil si no existe.
func (r *UsuariosRepo) FindByID(ctx context.Context, id int64) (*entity.Usuarios, error) {
	u, err := scanUsuarios(r.q.QueryRow(ctx, selectUsuariosSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuarios: %w", err)
	}
	return u, nil
}

// FindAll lista usuarios con paginación y el total de registros.
func (r *UsuariosRepo) FindAll(ctx context.Context, p repository.Pageable) (repository.Page[*entity.Usuarios], error) {
	page := repository.Page[*entity.Usuarios]{Number: p.Page, Size: p.Size}

	orderBy, err := orderByClause(p.Sort, repository.UsuariosSortProperties)
	if err != nil {
		return page, err
	}
	if err := r.q.QueryRow(ctx, countUsuariosSQL).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("count usuarios: %w", err)
	}

	rows, err := r.q.Query(ctx, fmt.Sprintf(listUsuariosSQL, orderBy), p.Size, p.Offset())
	if err != nil {
		return page, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	page.Content = make([]*entity.Usuarios, 0, max(p.Size, 0))
	for rows.Next() {
		u, err := scanUsuarios(rows)
		if err != nil {
			return page, fmt.Errorf("scan usuarios: %w", err)
		}
		page.Content = append(page.Content, u)
	}
	return page, rows.Err()
}

// Save reemplaza todas las columnas del usuario con ese ID, insertándolo si ya no existe.
func (r *UsuariosRepo) Save(ctx context.Context, u *entity.Usuarios) (*entity.Usuarios, error) {
	if u.ID == nil {
		return r.Create(ctx, u)
	}
	if _, err := r.q.Exec(ctx, upsertUsuariosSQL, *u.ID, u.Email, u.Password); err != nil {
		return nil, fmt.Errorf("save usuarios: %w", err)
	}
	return u.Clone(), nil
}

// DeleteByID elimina un usuario por ID.
func (r *UsuariosRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, deleteUsuariosSQL, id); err != nil {
		return fmt.Errorf("delete usuarios: %w", err)
	}
	return nil
}

func scanUsuarios(row pgx.Row) (*entity.Usuarios, error) {
	var (
		id int64
		u  entity.Usuarios
	)
	if err := row.Scan(&id, &u.Email, &u.Password); err != nil {
		return nil, err
	}
	u.ID = &id
	return &u, nil
}
