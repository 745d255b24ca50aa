package jwt_test

import (
	"testing"

	"github.com/jhoicas/gastos-admin/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	in := jwt.Session{UserID: "u1", Name: "Asha", Email: "asha@example.com", APIToken: "backend-token"}

	tok, err := jwt.Generate("secret", in, "gastos-admin", 5)
	require.NoError(t, err)

	out, err := jwt.Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("secret", jwt.Session{UserID: "u1"}, "gastos-admin", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate("secret", jwt.Session{UserID: "u1"}, "gastos-admin", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Session{}, "x", 5)
	assert.Error(t, err)
}
