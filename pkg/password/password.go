// Package password hashea y verifica contraseñas con bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost costo bcrypt usado para nuevas contraseñas.
const Cost = 10

// MaxBytes longitud máxima que bcrypt acepta; el resto se rechaza.
const MaxBytes = 72

// ErrMismatch la contraseña no corresponde al hash.
var ErrMismatch = errors.New("password: la contraseña no coincide")

// Hash devuelve el hash bcrypt de plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare verifica plain contra hash. Devuelve ErrMismatch si no coinciden y el error de
// bcrypt si el hash está corrupto.
func Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
