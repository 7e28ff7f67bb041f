package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wad01/wad/pkg/cryptox"
)

func TestGenerateEd25519KeyPair(t *testing.T) {
	kp, err := cryptox.GenerateEd25519KeyPair()
	require.NoError(t, err)

	privBlock, _ := pem.Decode(kp.PrivatePEM)
	require.NotNil(t, privBlock)
	require.Equal(t, "PRIVATE KEY", privBlock.Type)
	priv, err := x509.ParsePKCS8PrivateKey(privBlock.Bytes)
	require.NoError(t, err)
	require.IsType(t, ed25519.PrivateKey{}, priv)

	pubBlock, _ := pem.Decode(kp.PublicPEM)
	require.NotNil(t, pubBlock)
	require.Equal(t, "PUBLIC KEY", pubBlock.Type)
	pub, err := x509.ParsePKIXPublicKey(pubBlock.Bytes)
	require.NoError(t, err)
	require.Equal(t, priv.(ed25519.PrivateKey).Public(), pub)
}

func TestEd25519PublicKeyPEM(t *testing.T) {
	kp, err := cryptox.GenerateEd25519KeyPair()
	require.NoError(t, err)

	derived, err := cryptox.Ed25519PublicKeyPEM(kp.PrivatePEM)
	require.NoError(t, err)
	require.Equal(t, kp.PublicPEM, derived)

	_, err = cryptox.Ed25519PublicKeyPEM([]byte("not pem"))
	require.Error(t, err)

	_, err = cryptox.Ed25519PublicKeyPEM(kp.PublicPEM)
	require.Error(t, err, "a public key is not a PKCS8 private key")
}
