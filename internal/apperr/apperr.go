package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Error - классифицированная ошибка API: сообщение, код и HTTP-эквивалентный статус.
// Резолверы возвращают ее вместо "голых" ошибок, чтобы транспортный слой мог
// построить корректный ответ.
type Error struct {
	Message string
	Code    string
	Status  int
	Fields  []FieldError
}

// FieldError - сообщение об ошибке по конкретному полю ввода
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Validation собирает все ошибки полей в одну ошибку (не fail-fast)
func Validation(fields []FieldError) *Error {
	return &Error{
		Message: "Invalid input",
		Code:    "VALIDATION_FAILED",
		Status:  http.StatusUnprocessableEntity,
		Fields:  fields,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Message: message,
		Code:    "UNAUTHENTICATED",
		Status:  http.StatusUnauthorized,
	}
}

func NotFound(message string) *Error {
	return &Error{
		Message: message,
		Code:    "NOT_FOUND",
		Status:  http.StatusNotFound,
	}
}

func Conflict(message string) *Error {
	return &Error{
		Message: message,
		Code:    "CONFLICT",
		Status:  http.StatusConflict,
	}
}

// Presenter преобразует ошибки резолверов в gqlerror с расширениями
// {code, status, data}. Устанавливается через srv.SetErrorPresenter.
func Presenter(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)

	var appErr *Error
	if !errors.As(err, &appErr) {
		return gqlErr
	}

	gqlErr.Message = appErr.Message
	if gqlErr.Extensions == nil {
		gqlErr.Extensions = map[string]interface{}{}
	}
	gqlErr.Extensions["code"] = appErr.Code
	gqlErr.Extensions["status"] = appErr.Status

	if len(appErr.Fields) > 0 {
		gqlErr.Extensions["data"] = appErr.Fields
	}

	return gqlErr
}
