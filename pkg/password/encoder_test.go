package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Usuarios-api/pkg/password"
)

func TestPlain_DevuelveLaMisma(t *testing.T) {
	out, err := password.Plain{}.Encode("AAAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAA", out)
}

func TestBcrypt_GeneraHashVerificable(t *testing.T) {
	enc := password.Bcrypt{Cost: bcrypt.MinCost}
	hash, err := enc.Encode("AAAAAAAAAA")
	require.NoError(t, err)

	assert.NotEqual(t, "AAAAAAAAAA", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("AAAAAAAAAA")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("BBBBBBBBBB")))
}

func TestNew_SeleccionaEncoder(t *testing.T) {
	assert.IsType(t, password.Plain{}, password.New(false))
	assert.IsType(t, password.Bcrypt{}, password.New(true))
}
