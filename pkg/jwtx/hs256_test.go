package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/wad01/wad/pkg/jwtx"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHS256SignAndVerify(t *testing.T) {
	signer := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, signer.Validate())
	require.Equal(t, "HS256", signer.Alg())

	token, err := signer.Sign(jwtx.NewAccessClaims("id-1", "ada@example.com", "ada", time.Minute, exampleIssuer, time.Now()))
	require.NoError(t, err)

	claims, err := jwtx.NewVerifierHS256([]byte(testSecret), exampleIssuer).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, "id-1", claims.Subject)
}

func TestHS256Signer_ShortSecret(t *testing.T) {
	require.Error(t, jwtx.NewSignerHS256([]byte("short")).Validate())
}

func TestHS256Verify_Failures(t *testing.T) {
	signer := jwtx.NewSignerHS256([]byte(testSecret))
	verifier := jwtx.NewVerifierHS256([]byte(testSecret), exampleIssuer)

	valid, err := signer.Sign(jwtx.NewAccessClaims("id", "a@example.com", "", time.Minute, exampleIssuer, time.Now()))
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(valid, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := verifier.Verify(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwtx.NewVerifierHS256([]byte("fedcba9876543210fedcba9876543210"), exampleIssuer)
		_, err := other.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		old := time.Now().Add(-2 * time.Hour)
		token, err := signer.Sign(jwtx.NewAccessClaims("id", "a@example.com", "", time.Minute, exampleIssuer, old))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("algorithm none rejected", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("id", "a@example.com", "", time.Minute, exampleIssuer, time.Now())
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})
}

func TestNewSigner_NoKey(t *testing.T) {
	_, err := jwtx.NewSigner(jwtx.KeyOptions{Algorithm: "HS256"})
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	_, err = jwtx.NewSigner(jwtx.KeyOptions{Algorithm: "EdDSA"})
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	_, err = jwtx.NewVerifier(jwtx.KeyOptions{Algorithm: "RS256", Secret: testSecret})
	require.ErrorIs(t, err, jwtx.ErrUnsupported)
}

func TestNewVerifier_DefaultsToHS256(t *testing.T) {
	opts := jwtx.KeyOptions{Secret: testSecret, Issuer: exampleIssuer}

	signer, err := jwtx.NewSigner(opts)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier(opts)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("id", "b@example.com", "", time.Minute, exampleIssuer, time.Now()))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "b@example.com", claims.Email)
}
