package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta que solo lleva un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse respuesta de login y registro de trabajador.
type TokenResponse struct {
	Token string `json:"token"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Reportar los campos con el nombre que usa el cliente (json o form).
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
	return validate
}

// Validate aplica las reglas `validate` del struct. Si falla, devuelve un ErrValidation con
// message como texto y los campos inválidos como causa.
func Validate(in any, message string) error {
	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.WrapError(domain.ErrValidation, message, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return domain.WrapError(domain.ErrValidation, message, errors.New("campos inválidos: "+strings.Join(fields, ", ")))
}
