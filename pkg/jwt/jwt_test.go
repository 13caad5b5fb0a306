package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/pkg/jwt"
)

const secret = "segredo-de-teste"

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate(secret, 42, "carlos", "Gerente", "gestor-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, role, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "carlos", username)
	assert.Equal(t, "Gerente", role)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := jwt.Generate(secret, 1, "ana", "Caixa", "gestor-test", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := jwt.Generate(secret, 1, "ana", "Caixa", "gestor-test", -5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, _, _, err := jwt.Parse(secret, "nao-e-um-token")
	assert.Error(t, err)
}

func TestGenerateEmptySecret(t *testing.T) {
	_, err := jwt.Generate("", 1, "ana", "Caixa", "gestor-test", 60)
	assert.Error(t, err)
}
