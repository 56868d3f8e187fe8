package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Run("Validation carries all field errors", func(t *testing.T) {
		err := Validation([]FieldError{
			{Field: "email", Message: "Email is invalid"},
			{Field: "password", Message: "Password invalid"},
		})

		assert.Equal(t, "Invalid input", err.Message)
		assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
		assert.Len(t, err.Fields, 2)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		err := Unauthorized("Not authenticated")
		assert.Equal(t, http.StatusUnauthorized, err.Status)
		assert.Equal(t, "Not authenticated", err.Error())
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound("No post found")
		assert.Equal(t, http.StatusNotFound, err.Status)
	})

	t.Run("Conflict", func(t *testing.T) {
		err := Conflict("User exists")
		assert.Equal(t, http.StatusConflict, err.Status)
	})
}

func TestPresenter(t *testing.T) {
	t.Run("Classified error becomes extensions", func(t *testing.T) {
		appErr := Validation([]FieldError{{Field: "email", Message: "Email is invalid"}})

		gqlErr := Presenter(context.Background(), appErr)
		require.NotNil(t, gqlErr)

		assert.Equal(t, "Invalid input", gqlErr.Message)
		assert.Equal(t, "VALIDATION_FAILED", gqlErr.Extensions["code"])
		assert.Equal(t, http.StatusUnprocessableEntity, gqlErr.Extensions["status"])
		assert.Equal(t, appErr.Fields, gqlErr.Extensions["data"])
	})

	t.Run("Wrapped classified error is still recognized", func(t *testing.T) {
		appErr := NotFound("No post found")
		wrapped := fmt.Errorf("resolver: %w", appErr)

		gqlErr := Presenter(context.Background(), wrapped)
		require.NotNil(t, gqlErr)

		assert.Equal(t, "No post found", gqlErr.Message)
		assert.Equal(t, "NOT_FOUND", gqlErr.Extensions["code"])
	})

	t.Run("Unclassified error passes through unchanged", func(t *testing.T) {
		plain := errors.New("boom")

		gqlErr := Presenter(context.Background(), plain)
		require.NotNil(t, gqlErr)

		_, hasCode := gqlErr.Extensions["code"]
		assert.False(t, hasCode)
	})
}
