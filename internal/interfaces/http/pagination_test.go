package http

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

var testPagination = PaginationConfig{DefaultSize: 20, MaxSize: 100}

// pageableFor ejecuta parsePageable sobre la query indicada.
func pageableFor(t *testing.T, query string) (repository.Pageable, error) {
	t.Helper()
	var (
		got    repository.Pageable
		gotErr error
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got, gotErr = parsePageable(c, testPagination, repository.UsuariosSortProperties)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+query, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	return got, gotErr
}

func TestParsePageable_Defaults(t *testing.T) {
	p, err := pageableFor(t, "")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 20, p.Size)
	assert.Empty(t, p.Sort)
}

func TestParsePageable_Limites(t *testing.T) {
	p, err := pageableFor(t, "?page=-3&size=5000")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 100, p.Size)

	p, err = pageableFor(t, "?size=0")
	require.NoError(t, err)
	assert.Equal(t, 20, p.Size)
}

func TestParsePageable_PaginaNoDesbordaOffset(t *testing.T) {
	p, err := pageableFor(t, "?page=461168601842738791&size=20")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/20, p.Page)
	assert.GreaterOrEqual(t, p.Offset(), 0)
}

func TestParsePageable_VariosSort(t *testing.T) {
	p, err := pageableFor(t, "?sort=email,desc&sort=id")
	require.NoError(t, err)
	assert.Equal(t, []repository.Order{
		{Property: "email", Direction: repository.Desc},
		{Property: "id", Direction: repository.Asc},
	}, p.Sort)
}

func TestParseSort(t *testing.T) {
	orders, err := parseSort("email,password,DESC", repository.UsuariosSortProperties)
	require.NoError(t, err)
	assert.Equal(t, []repository.Order{
		{Property: "email", Direction: repository.Desc},
		{Property: "password", Direction: repository.Desc},
	}, orders)

	_, err = parseSort("nombre", repository.UsuariosSortProperties)
	assert.Error(t, err)
}

// linkFor ejecuta setPaginationHeaders con la página dada y devuelve el header Link.
func linkFor(t *testing.T, target string, page repository.Page[int]) (string, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/api/usuarios", func(c *fiber.Ctx) error {
		setPaginationHeaders(c, page)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.Header.Get("Link"), resp.Header.Get("X-Total-Count")
}

func rels(link string) []string {
	var out []string
	for _, part := range strings.Split(link, ",") {
		i := strings.Index(part, `rel="`)
		if i < 0 {
			continue
		}
		out = append(out, strings.TrimSuffix(part[i+5:], `"`))
	}
	return out
}

func TestPaginationHeaders_PrimeraPagina(t *testing.T) {
	link, total := linkFor(t, "/api/usuarios?page=0&size=10", repository.Page[int]{Total: 25, Number: 0, Size: 10})
	assert.Equal(t, "25", total)
	assert.Equal(t, []string{"next", "last", "first"}, rels(link))
	assert.Contains(t, link, "page=1&size=10>; rel=\"next\"")
	assert.Contains(t, link, "page=2&size=10>; rel=\"last\"")
}

func TestPaginationHeaders_PaginaIntermedia(t *testing.T) {
	link, _ := linkFor(t, "/api/usuarios?page=1&size=10&sort=id,desc", repository.Page[int]{Total: 25, Number: 1, Size: 10})
	assert.Equal(t, []string{"next", "prev", "last", "first"}, rels(link))
	assert.Contains(t, link, "sort=id%2Cdesc")
}

func TestPaginationHeaders_UltimaPagina(t *testing.T) {
	link, _ := linkFor(t, "/api/usuarios?page=2&size=10", repository.Page[int]{Total: 25, Number: 2, Size: 10})
	assert.Equal(t, []string{"prev", "last", "first"}, rels(link))
	assert.Contains(t, link, "page=1&size=10>; rel=\"prev\"")
}

func TestPaginationHeaders_SinResultados(t *testing.T) {
	link, total := linkFor(t, "/api/usuarios", repository.Page[int]{Total: 0, Number: 0, Size: 20})
	assert.Equal(t, "0", total)
	assert.Equal(t, []string{"last", "first"}, rels(link))
	assert.Contains(t, link, "page=0&size=20>; rel=\"last\"")
}

func TestAlertHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		setCreationAlert(c, "loginApp", "astenEnsinoUsuarios", "a b")
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "loginApp.astenEnsinoUsuarios.created", resp.Header.Get("X-loginApp-alert"))
	assert.Equal(t, "a+b", resp.Header.Get("X-loginApp-params"))
}
