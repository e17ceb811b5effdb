package security

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jhoicas/sm-customers/internal/application/ports"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var _ ports.TokenGenerator = RandomTokenGenerator{}

// RandomTokenGenerator genera tokens con crypto/rand, sin sesgo de módulo.
type RandomTokenGenerator struct{}

// Alphanumeric devuelve n caracteres de [A-Za-z0-9].
func (RandomTokenGenerator) Alphanumeric(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("longitud de token inválida: %d", n)
	}
	limit := big.NewInt(int64(len(alphanumeric)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("leyendo entropía: %w", err)
		}
		out[i] = alphanumeric[idx.Int64()]
	}
	return string(out), nil
}
