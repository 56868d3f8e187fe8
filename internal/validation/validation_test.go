package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	t.Run("Valid emails", func(t *testing.T) {
		assert.True(t, IsEmail("user@example.com"))
		assert.True(t, IsEmail("first.last@sub.domain.org"))
	})

	t.Run("Malformed emails", func(t *testing.T) {
		assert.False(t, IsEmail(""))
		assert.False(t, IsEmail("not-an-email"))
		assert.False(t, IsEmail("missing@tld@double.com"))
		assert.False(t, IsEmail("@nouser.com"))
	})
}

func TestNotEmpty(t *testing.T) {
	assert.True(t, NotEmpty("x"))
	assert.False(t, NotEmpty(""))
}

func TestMinLength(t *testing.T) {
	assert.True(t, MinLength("hello", 5))
	assert.False(t, MinLength("hi", 5))
	assert.False(t, MinLength("", 5))
}
