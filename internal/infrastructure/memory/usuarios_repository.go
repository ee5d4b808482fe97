// Package memory implementa los puertos de persistencia en memoria (desarrollo local y tests).
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/Usuarios-api/internal/domain"
	"github.com/jhoicas/Usuarios-api/internal/domain/entity"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

var _ repository.UsuariosRepository = (*UsuariosRepo)(nil)

// UsuariosRepo almacén de usuarios en memoria. Los IDs salen de un contador creciente que nunca se reutiliza.
type UsuariosRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]*entity.Usuarios
}

// NewUsuariosRepository construye el almacén vacío.
func NewUsuariosRepository() *UsuariosRepo {
	return &UsuariosRepo{byID: make(map[int64]*entity.Usuarios)}
}

// Create asigna el siguiente ID y guarda una copia del usuario.
func (r *UsuariosRepo) Create(ctx context.Context, u *entity.Usuarios) (*entity.Usuarios, error) {
	if u.ID != nil {
		return nil, fmt.Errorf("create usuarios: %w", domain.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	stored := u.Clone()
	id := r.seq
	stored.ID = &id
	r.byID[id] = stored
	return stored.Clone(), nil
}

// ExistsByID indica si hay un usuario con ese ID.
func (r *UsuariosRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}

// FindByID devuelve una copia del usuario o nil si no existe.
func (r *UsuariosRepo) FindByID(ctx context.Context, id int64) (*entity.Usuarios, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Clone(), nil
}

// FindAll ordena según p.Sort (por defecto id ascendente) y devuelve la porción pedida.
func (r *UsuariosRepo) FindAll(ctx context.Context, p repository.Pageable) (repository.Page[*entity.Usuarios], error) {
	if err := ctx.Err(); err != nil {
		return repository.Page[*entity.Usuarios]{}, err
	}
	for _, o := range p.Sort {
		if _, ok := repository.UsuariosSortProperties[o.Property]; !ok {
			return repository.Page[*entity.Usuarios]{}, fmt.Errorf("sort %q: %w", o.Property, domain.ErrInvalidArgument)
		}
	}

	r.mu.RLock()
	all := make([]*entity.Usuarios, 0, len(r.byID))
	for _, u := range r.byID {
		all = append(all, u.Clone())
	}
	r.mu.RUnlock()

	orders := p.Sort
	if len(orders) == 0 {
		orders = []repository.Order{{Property: "id", Direction: repository.Asc}}
	}
	slices.SortStableFunc(all, func(a, b *entity.Usuarios) int {
		for _, o := range orders {
			c := compareBy(o.Property, a, b)
			if o.Direction == repository.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(*a.ID, *b.ID)
	})

	page := repository.Page[*entity.Usuarios]{Total: int64(len(all)), Number: p.Page, Size: p.Size}
	start := max(0, min(p.Offset(), len(all)))
	end := start
	if p.Size > 0 {
		end = start + min(p.Size, len(all)-start)
	}
	page.Content = all[start:end]
	return page, nil
}

// Save reemplaza el registro con el ID de u o lo inserta con ese ID.
func (r *UsuariosRepo) Save(ctx context.Context, u *entity.Usuarios) (*entity.Usuarios, error) {
	if u.ID == nil {
		return r.Create(ctx, u)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := u.Clone()
	r.byID[*stored.ID] = stored
	if *stored.ID > r.seq {
		r.seq = *stored.ID
	}
	return stored.Clone(), nil
}

// DeleteByID elimina el usuario si existe.
func (r *UsuariosRepo) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

// Ping cumple el chequeo de salud del servidor.
func (r *UsuariosRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// compareBy trata NULL como el mayor valor, igual que PostgreSQL (NULLS LAST en ASC, FIRST en DESC).
func compareBy(property string, a, b *entity.Usuarios) int {
	switch property {
	case "id":
		return cmp.Compare(*a.ID, *b.ID)
	case "email":
		return compareNullable(a.Email, b.Email)
	case "password":
		return compareNullable(a.Password, b.Password)
	}
	return 0
}

func compareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*a, *b)
}
