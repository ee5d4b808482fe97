package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Usuarios-api/internal/application/dto"
	"github.com/jhoicas/Usuarios-api/internal/application/usecase"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
	"github.com/jhoicas/Usuarios-api/pkg/logger"
)

const mimeMergePatchJSON = "application/merge-patch+json"

// UsuariosHandler maneja las peticiones HTTP para Usuarios.
type UsuariosHandler struct {
	uc         *usecase.UsuariosUseCase
	log        *logger.Logger
	appName    string
	pagination PaginationConfig
}

// NewUsuariosHandler construye el handler. appName es el prefijo de los headers de alerta.
func NewUsuariosHandler(uc *usecase.UsuariosUseCase, log *logger.Logger, appName string, pagination PaginationConfig) *UsuariosHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &UsuariosHandler{uc: uc, log: log, appName: appName, pagination: pagination}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuariosRequest  true  "Usuario sin id"
// @Success      201   {object}  dto.UsuariosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuariosHandler) Create(c *fiber.Ctx) error {
	var in dto.UsuariosRequest
	if err := decodeBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.requestLog(c).Debug().Msg("REST request to save Usuarios")

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}
	id := strconv.FormatInt(out.ID, 10)
	c.Location("/api/usuarios/" + id)
	setCreationAlert(c, h.appName, usecase.UsuariosEntityName, id)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del usuario"
// @Param        body  body  dto.UsuariosRequest  true  "Usuario completo (id igual al de la ruta)"
// @Success      200   {object}  dto.UsuariosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuariosHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UsuariosRequest
	if err := decodeBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.requestLog(c).Debug().Int64("id", id).Msg("REST request to update Usuarios")

	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.respondError(c, err)
	}
	setUpdateAlert(c, h.appName, usecase.UsuariosEntityName, strconv.FormatInt(out.ID, 10))
	return c.JSON(out)
}

// PartialUpdate godoc
// @Summary      Actualizar parcialmente un usuario (merge-patch)
// @Tags         usuarios
// @Accept       json
// @Accept       application/merge-patch+json
// @Produce      json
// @Param        id    path  int                  true  "ID del usuario"
// @Param        body  body  dto.UsuariosRequest  true  "Campos a modificar (id obligatorio)"
// @Success      200   {object}  dto.UsuariosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [patch]
func (h *UsuariosHandler) PartialUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	ct := strings.ToLower(strings.TrimSpace(strings.Split(c.Get(fiber.HeaderContentType), ";")[0]))
	if ct != fiber.MIMEApplicationJSON && ct != mimeMergePatchJSON {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "se espera application/json o application/merge-patch+json"})
	}
	var in dto.UsuariosRequest
	if err := decodeBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.requestLog(c).Debug().Int64("id", id).Msg("REST request to partial update Usuarios")

	out, err := h.uc.PartialUpdate(c.UserContext(), id, in)
	if err != nil {
		return h.respondError(c, err)
	}
	setUpdateAlert(c, h.appName, usecase.UsuariosEntityName, strconv.FormatInt(out.ID, 10))
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Param        page  query  int     false  "Página (base 0)"  default(0)
// @Param        size  query  int     false  "Tamaño de página" default(20)
// @Param        sort  query  string  false  "Orden: propiedad[,asc|desc]"
// @Success      200   {array}   dto.UsuariosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UsuariosHandler) List(c *fiber.Ctx) error {
	p, err := parsePageable(c, h.pagination, repository.UsuariosSortProperties)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SORT", Message: err.Error()})
	}
	h.requestLog(c).Debug().Int("page", p.Page).Int("size", p.Size).Msg("REST request to get a page of Usuarios")

	out, err := h.uc.List(c.UserContext(), p)
	if err != nil {
		return h.respondError(c, err)
	}
	setPaginationHeaders(c, repository.Page[dto.UsuariosResponse]{
		Content: out.Items,
		Total:   out.Page.Total,
		Number:  out.Page.Number,
		Size:    out.Page.Size,
	})
	return c.JSON(out.Items)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UsuariosResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuariosHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	h.requestLog(c).Debug().Int64("id", id).Msg("REST request to get Usuarios")

	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Param        id   path  int  true  "ID del usuario"
// @Success      204
// @Router       /api/usuarios/{id} [delete]
func (h *UsuariosHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	h.requestLog(c).Debug().Int64("id", id).Msg("REST request to delete Usuarios")

	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.respondError(c, err)
	}
	setDeletionAlert(c, h.appName, usecase.UsuariosEntityName, strconv.FormatInt(id, 10))
	return c.SendStatus(fiber.StatusNoContent)
}

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
}

// decodeBody usa el decoder JSON de la app; no depende del Content-Type (merge-patch incluido).
func decodeBody(c *fiber.Ctx, in *dto.UsuariosRequest) error {
	return c.App().Config().JSONDecoder(c.Body(), in)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// requestLog logger hijo con los datos de la petición (request id y, con JWT, login y autoridades).
func (h *UsuariosHandler) requestLog(c *fiber.Ctx) *logger.Logger {
	return h.log.ForRequest(logger.Request{
		ID:          GetRequestID(c),
		Login:       GetLogin(c),
		Authorities: GetAuthorities(c),
	})
}
