// Package password codifica contraseñas antes de persistirlas.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Encoder transforma la contraseña recibida en la que se almacena.
type Encoder interface {
	Encode(raw string) (string, error)
}

// Plain guarda la contraseña tal cual llega (comportamiento por defecto del servicio).
type Plain struct{}

// Encode devuelve raw sin cambios.
func (Plain) Encode(raw string) (string, error) { return raw, nil }

// Bcrypt aplica bcrypt con el costo indicado (bcrypt.DefaultCost si es 0).
type Bcrypt struct {
	Cost int
}

// Encode devuelve el hash bcrypt de raw.
func (b Bcrypt) Encode(raw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// New elige el encoder según la configuración.
func New(hash bool) Encoder {
	if hash {
		return Bcrypt{}
	}
	return Plain{}
}
