// validation — проверка входных DTO через go-playground/validator.
// Ошибки возвращаются типизированным списком полей (*Errors), который
// HTTP-слой отдаёт клиенту как 400 с field-level сообщениями.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Сообщения совпадают с тем, что видит клиент в поле fields[].message.
const (
	MsgRequired      = "Missing data for required field."
	MsgEmail         = "Not a valid email address."
	MsgPasswordRules = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	MsgContentBlank  = "Content cannot be empty"
	MsgInvalid       = "Invalid value."
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	reUpper   = regexp.MustCompile(`[A-Z]`)
	reLower   = regexp.MustCompile(`[a-z]`)
	reDigit   = regexp.MustCompile(`\d`)
	reSpecial = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// FieldError — ошибка одного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors — список ошибок валидации. Реализует error.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError создаёт ошибку валидации с одним полем.
func NewError(field, message string) *Errors {
	return &Errors{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validator возвращает общий экземпляр валидатора с пользовательскими тегами:
//   - password: хотя бы одна заглавная, строчная буква, цифра и спецсимвол;
//   - notblank: строка не состоит только из пробельных символов.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return StrongPassword(fl.Field().String())
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// StrongPassword проверяет состав пароля (без учёта длины).
func StrongPassword(s string) bool {
	return reUpper.MatchString(s) &&
		reLower.MatchString(s) &&
		reDigit.MatchString(s) &&
		reSpecial.MatchString(s)
}

// Struct проверяет структуру. Возвращает nil или *Errors
// (по одной ошибке на поле, в порядке объявления полей).
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Errors{}
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		if _, ok := seen[fe.Field()]; ok {
			continue
		}
		seen[fe.Field()] = struct{}{}

		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "email":
		return MsgEmail
	case "password":
		return MsgPasswordRules
	case "notblank":
		if fe.Field() == "content" {
			return MsgContentBlank
		}
		return "Field cannot be blank."
	case "min", "max":
		return lengthMessage(fe)
	default:
		return MsgInvalid
	}
}

func lengthMessage(fe validator.FieldError) string {
	if fe.Kind() != reflect.String {
		if fe.Tag() == "min" {
			return "Must be greater than or equal to " + fe.Param() + "."
		}
		return "Must be less than or equal to " + fe.Param() + "."
	}

	if fe.Tag() == "min" {
		return "Shorter than minimum length " + fe.Param() + "."
	}

	return "Longer than maximum length " + fe.Param() + "."
}
