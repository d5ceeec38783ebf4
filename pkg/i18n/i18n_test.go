package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	l := NewLocalizer("en")

	assert.Equal(t, "Resource not found", l.Get("en", ERROR_NOT_FOUND))
	assert.Equal(t, "Sign in required", l.Get("en", ERROR_UNAUTHORIZED))
}

func TestLangFallbacks(t *testing.T) {
	l := NewLocalizer("en")

	// unknown id resolves to itself
	assert.Equal(t, "error.nope", l.Get("en", "error.nope"))
	// unknown language resolves to the id
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}
