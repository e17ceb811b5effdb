package security_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sm-customers/internal/infrastructure/security"
)

func TestBcryptHasher_HashYCompare(t *testing.T) {
	h, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("Pass?Word_1")

	require.NoError(t, err)
	assert.NotEqual(t, "Pass?Word_1", hash)
	assert.NoError(t, h.Compare(hash, "Pass?Word_1"))
	assert.Error(t, h.Compare(hash, "otra"))
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_CostoFueraDeRango(t *testing.T) {
	_, err := security.NewBcryptHasher(99)
	assert.Error(t, err)

	h, err := security.NewBcryptHasher(0)
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestRandomTokenGenerator(t *testing.T) {
	var gen security.RandomTokenGenerator
	re := regexp.MustCompile(`^[A-Za-z0-9]{32}$`)

	a, err := gen.Alphanumeric(32)
	require.NoError(t, err)
	b, err := gen.Alphanumeric(32)
	require.NoError(t, err)

	assert.Regexp(t, re, a)
	assert.Regexp(t, re, b)
	assert.NotEqual(t, a, b)

	_, err = gen.Alphanumeric(0)
	assert.Error(t, err)
}
