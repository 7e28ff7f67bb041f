package jwtx_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wad01/wad/pkg/cryptox"
	"github.com/wad01/wad/pkg/jwtx"
)

const exampleIssuer = "wad-api"

func newEdDSAKeys(t *testing.T) (priv, pub []byte) {
	t.Helper()

	kp, err := cryptox.GenerateEd25519KeyPair()
	require.NoError(t, err)
	return kp.PrivatePEM, kp.PublicPEM
}

func TestEdDSASignAndVerify(t *testing.T) {
	privPEM, pubPEM := newEdDSAKeys(t)

	signer, err := jwtx.NewSignerEdDSA("test-key-eddsa", privPEM)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key-eddsa", signer.KID())

	claims := jwtx.NewAccessClaims("user-456", "eddsa@example.com", "eddsauser", 5*time.Minute, exampleIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier, err := jwtx.NewVerifierEdDSA(pubPEM, exampleIssuer)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-456", got.Subject)
	require.Equal(t, "eddsa@example.com", got.Email)
	require.Equal(t, "eddsauser", got.Username)
}

func TestEdDSAVerify_WrongKey(t *testing.T) {
	privPEM, _ := newEdDSAKeys(t)
	_, otherPub := newEdDSAKeys(t)

	signer, err := jwtx.NewSignerEdDSA("", privPEM)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("u", "u@example.com", "", time.Minute, exampleIssuer, time.Now()))
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifierEdDSA(otherPub, exampleIssuer)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestEdDSAVerify_IssuerMismatch(t *testing.T) {
	privPEM, pubPEM := newEdDSAKeys(t)

	signer, err := jwtx.NewSignerEdDSA("", privPEM)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims("u", "u@example.com", "", time.Minute, "someone-else", time.Now()))
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifierEdDSA(pubPEM, exampleIssuer)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestNewSignerEdDSA_InvalidPEM(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("", []byte("not a pem"))
	require.Error(t, err)

	_, pubPEM := newEdDSAKeys(t)
	_, err = jwtx.NewSignerEdDSA("", pubPEM)
	require.Error(t, err, "public key PEM must be rejected as a signing key")
}

func TestNewVerifierFromFiles(t *testing.T) {
	privPEM, pubPEM := newEdDSAKeys(t)

	dir := t.TempDir()
	privFile := filepath.Join(dir, "jwt.key")
	pubFile := filepath.Join(dir, "jwt.pub")
	require.NoError(t, os.WriteFile(privFile, privPEM, 0o600))
	require.NoError(t, os.WriteFile(pubFile, pubPEM, 0o600))

	opts := jwtx.KeyOptions{
		Algorithm:      "eddsa",
		Issuer:         exampleIssuer,
		PublicKeyFile:  pubFile,
		PrivateKeyFile: privFile,
	}

	signer, err := jwtx.NewSigner(opts)
	require.NoError(t, err)
	require.Equal(t, jwtx.AlgorithmEdDSA, signer.Alg())

	verifier, err := jwtx.NewVerifier(opts)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("u", "file@example.com", "", time.Minute, exampleIssuer, time.Now()))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "file@example.com", claims.Email)
}
