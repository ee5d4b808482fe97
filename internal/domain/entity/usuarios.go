package entity

// Usuarios registro de usuario del servicio de login.
// ID lo asigna la secuencia de la base de datos al crear; los demás campos son opcionales.
// Password se persiste tal como la entrega el caso de uso (en claro salvo que se configure bcrypt).
type Usuarios struct {
	ID       *int64
	Email    *string
	Password *string
}

// Equal compara por identidad: dos usuarios son iguales solo si ambos tienen ID y coincide.
// Un usuario sin ID nunca es igual a otro, ni siquiera a otro sin ID.
func (u *Usuarios) Equal(other *Usuarios) bool {
	if u == nil || other == nil {
		return false
	}
	if u == other {
		return true
	}
	return u.ID != nil && other.ID != nil && *u.ID == *other.ID
}

// Clone devuelve una copia profunda (los punteros no se comparten).
func (u *Usuarios) Clone() *Usuarios {
	if u == nil {
		return nil
	}
	out := &Usuarios{}
	if u.ID != nil {
		id := *u.ID
		out.ID = &id
	}
	if u.Email != nil {
		email := *u.Email
		out.Email = &email
	}
	if u.Password != nil {
		pwd := *u.Password
		out.Password = &pwd
	}
	return out
}
