package dto

// UsuariosRequest cuerpo de POST, PUT y PATCH. Un campo ausente o null significa "no enviado".
type UsuariosRequest struct {
	ID       *int64  `json:"id"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UsuariosResponse salida de un usuario.
type UsuariosResponse struct {
	ID       int64   `json:"id"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UsuariosPage página de usuarios; el handler envía Items como cuerpo y Page en headers.
type UsuariosPage struct {
	Items []UsuariosResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
