package usecase_test

import (
	"fmt"
	"testing"

	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/stretchr/testify/assert"
)

type serverErr struct{ msg string }

func (e serverErr) Error() string       { return "api: " + e.msg }
func (e serverErr) UserMessage() string { return e.msg }

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", usecase.UserMessage(nil, "fallback"))
	assert.Equal(t, "Cliente duplicado", usecase.UserMessage(fmt.Errorf("crear: %w", serverErr{"Cliente duplicado"}), "fallback"))
	assert.Equal(t, "fallback", usecase.UserMessage(serverErr{""}, "fallback"))
	assert.Equal(t, "fallback", usecase.UserMessage(errBackend, "fallback"))
	assert.Contains(t, usecase.UserMessage(fmt.Errorf("x: %w", domain.ErrUnauthorized), "fallback"), "sesión")
	assert.Equal(t, domain.ErrEmptyRange.Error(), usecase.UserMessage(domain.ErrEmptyRange, "fallback"))
}
