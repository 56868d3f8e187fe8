package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail проверяет, что строка - синтаксически корректный email-адрес
func IsEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// NotEmpty проверяет, что строка непустая
func NotEmpty(value string) bool {
	return validate.Var(value, "required") == nil
}

// MinLength проверяет, что строка непустая и не короче min символов
func MinLength(value string, min int) bool {
	return validate.Var(value, fmt.Sprintf("required,min=%d", min)) == nil
}
