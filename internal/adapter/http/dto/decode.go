package dto

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// ErrInvalidParams некорректные параметры запроса
var ErrInvalidParams = errors.New("invalid request parameters")

var (
	// decoder кэширует структуры и безопасен для конкурентного использования
	decoder  = newDecoder()
	validate = newValidator()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках используем имена параметров запроса
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// DecodeQuery разбирает строку запроса в dst и валидирует результат
func DecodeQuery(dst any, query url.Values) error {
	if err := decoder.Decode(dst, query); err != nil {
		var multi schema.MultiError
		if errors.As(err, &multi) {
			keys := make([]string, 0, len(multi))
			for k := range multi {
				keys = append(keys, k)
			}
			return fmt.Errorf("%w: malformed %s", ErrInvalidParams, strings.Join(keys, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	return nil
}
