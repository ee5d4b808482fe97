package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
)

// Headers de alerta para el cliente: X-<app>-alert lleva la clave del mensaje y X-<app>-params el parámetro.
func setAlert(c *fiber.Ctx, appName, message, param string) {
	c.Set("X-"+appName+"-alert", message)
	c.Set("X-"+appName+"-params", url.QueryEscape(param))
}

func setCreationAlert(c *fiber.Ctx, appName, entityName, param string) {
	setAlert(c, appName, appName+"."+entityName+".created", param)
}

func setUpdateAlert(c *fiber.Ctx, appName, entityName, param string) {
	setAlert(c, appName, appName+"."+entityName+".updated", param)
}

func setDeletionAlert(c *fiber.Ctx, appName, entityName, param string) {
	setAlert(c, appName, appName+"."+entityName+".deleted", param)
}

func setFailureAlert(c *fiber.Ctx, appName, entityName, errorKey string) {
	c.Set("X-"+appName+"-error", "error."+errorKey)
	c.Set("X-"+appName+"-params", entityName)
}

// setPaginationHeaders escribe X-Total-Count y Link (next, prev, last, first) a partir de la URL actual.
func setPaginationHeaders[T any](c *fiber.Ctx, page repository.Page[T]) {
	c.Set("X-Total-Count", strconv.FormatInt(page.Total, 10))

	base, err := url.Parse(c.BaseURL() + c.OriginalURL())
	if err != nil {
		return
	}
	links := make([]string, 0, 4)
	if page.HasNext() {
		links = append(links, pageLink(base, page.Number+1, page.Size, "next"))
	}
	if page.HasPrevious() {
		links = append(links, pageLink(base, page.Number-1, page.Size, "prev"))
	}
	lastPage := 0
	if tp := page.TotalPages(); tp > 0 {
		lastPage = tp - 1
	}
	links = append(links,
		pageLink(base, lastPage, page.Size, "last"),
		pageLink(base, 0, page.Size, "first"),
	)
	c.Set("Link", strings.Join(links, ","))
}

func pageLink(base *url.URL, number, size int, rel string) string {
	u := *base
	q := u.Query()
	q.Set("page", strconv.Itoa(number))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return fmt.Sprintf("<%s>; rel=\"%s\"", u.String(), rel)
}
