package memory_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Usuarios-api/internal/domain"
	"github.com/jhoicas/Usuarios-api/internal/domain/entity"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
	"github.com/jhoicas/Usuarios-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T, repo *memory.UsuariosRepo, emails ...string) []*entity.Usuarios {
	t.Helper()
	out := make([]*entity.Usuarios, 0, len(emails))
	for _, e := range emails {
		u, err := repo.Create(context.Background(), &entity.Usuarios{Email: ptr(e), Password: ptr("pwd-" + e)})
		require.NoError(t, err)
		out = append(out, u)
	}
	return out
}

func TestCreate_AsignaIDsCrecientes(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	created := seed(t, repo, "a", "b", "c")

	for i := 1; i < len(created); i++ {
		assert.Greater(t, *created[i].ID, *created[i-1].ID)
	}
}

func TestCreate_ConIDFalla(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	_, err := repo.Create(context.Background(), &entity.Usuarios{ID: ptr(int64(1))})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreate_ConcurrenteSinDuplicados(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := repo.Create(context.Background(), &entity.Usuarios{})
			if err == nil {
				ids <- *u.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d repetido", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestFindByID_DevuelveCopia(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	u := seed(t, repo, "a")[0]

	got, err := repo.FindByID(context.Background(), *u.ID)
	require.NoError(t, err)
	*got.Email = "mutado"

	again, err := repo.FindByID(context.Background(), *u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", *again.Email)

	missing, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSave_ReemplazaCompleto(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	u := seed(t, repo, "a")[0]

	_, err := repo.Save(context.Background(), &entity.Usuarios{ID: u.ID, Email: ptr("b")})
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), *u.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", *got.Email)
	assert.Nil(t, got.Password, "save reemplaza el registro completo")
}

func TestDeleteByID_Idempotente(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	u := seed(t, repo, "a")[0]

	require.NoError(t, repo.DeleteByID(context.Background(), *u.ID))
	require.NoError(t, repo.DeleteByID(context.Background(), *u.ID))

	exists, err := repo.ExistsByID(context.Background(), *u.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindAll_PaginaYOrdena(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	seed(t, repo, "c", "a", "e", "b", "d")

	page, err := repo.FindAll(context.Background(), repository.Pageable{
		Page: 0, Size: 2,
		Sort: []repository.Order{{Property: "email", Direction: repository.Asc}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "a", *page.Content[0].Email)
	assert.Equal(t, "b", *page.Content[1].Email)

	page, err = repo.FindAll(context.Background(), repository.Pageable{
		Page: 0, Size: 10,
		Sort: []repository.Order{{Property: "id", Direction: repository.Desc}},
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 5)
	assert.Equal(t, "d", *page.Content[0].Email)

	page, err = repo.FindAll(context.Background(), repository.Pageable{Page: 3, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(5), page.Total)
}

func TestFindAll_PaginaFueraDeRangoDevuelveVacio(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	seed(t, repo, "a", "b")

	for _, p := range []repository.Pageable{
		{Page: 461168601842738791, Size: 20},
		{Page: math.MaxInt, Size: math.MaxInt},
		{Page: -4, Size: 20},
		{Page: 0, Size: -1},
	} {
		var (
			page repository.Page[*entity.Usuarios]
			err  error
		)
		require.NotPanics(t, func() {
			page, err = repo.FindAll(context.Background(), p)
		}, "page=%d size=%d", p.Page, p.Size)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		if p.Page != -4 {
			assert.Empty(t, page.Content)
		}
	}
}

func TestFindAll_PropiedadDesconocida(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	_, err := repo.FindAll(context.Background(), repository.Pageable{
		Size: 10, Sort: []repository.Order{{Property: "nombre"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTxRunner_EjecutaConElRepositorio(t *testing.T) {
	repo := memory.NewUsuariosRepository()
	tx := memory.NewTxRunner(repo)

	err := tx.RunUsuarios(context.Background(), func(r repository.UsuariosRepository) error {
		_, err := r.Create(context.Background(), &entity.Usuarios{Email: ptr("tx")})
		return err
	})
	require.NoError(t, err)

	page, err := repo.FindAll(context.Background(), repository.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
