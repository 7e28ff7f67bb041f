package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wad01/wad/pkg/cryptox"
	"github.com/wad01/wad/pkg/jwtx"
)

// secretSize is the byte length of a generated HS256 secret.
const secretSize = 32

// InitTokenKeys builds the token verifier and, when signing material is
// configured, the signer used by POST /auth/token.
//
// Missing key material is fatal in prod. Elsewhere an ephemeral secret or
// key pair is generated so the service is usable locally; its tokens die
// with the process.
func InitTokenKeys(cfg Config, logger *slog.Logger) (jwtx.Verifier, jwtx.Signer, error) {
	opts := jwtx.KeyOptions{
		Algorithm:      cfg.JWTAlgorithm,
		Issuer:         cfg.JWTIssuer,
		Secret:         cfg.JWTSecret,
		PublicKeyFile:  cfg.JWTPublicKeyFile,
		PrivateKeyFile: cfg.JWTPrivateKeyFile,
	}

	if isEdDSA(opts.Algorithm) {
		return initEdDSAKeys(cfg, opts, logger)
	}

	if opts.Secret == "" {
		if cfg.Env == "prod" {
			return nil, nil, errors.New("JWT_SECRET is required in prod")
		}
		secret, err := cryptox.GenerateToken(secretSize)
		if err != nil {
			return nil, nil, fmt.Errorf("generate ephemeral jwt secret: %w", err)
		}
		opts.Secret = secret
		logger.Warn("JWT_SECRET not set, using an ephemeral secret")
	}

	verifier, err := jwtx.NewVerifier(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt verifier: %w", err)
	}

	signer, err := jwtx.NewSigner(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt signer: %w", err)
	}
	return withSigner(verifier, signer, logger)
}

// initEdDSAKeys accepts a public key file (verify only), a private key file
// (the public half is derived) or both.
func initEdDSAKeys(cfg Config, opts jwtx.KeyOptions, logger *slog.Logger) (jwtx.Verifier, jwtx.Signer, error) {
	switch {
	case opts.PublicKeyFile == "" && opts.PrivateKeyFile == "":
		if cfg.Env == "prod" {
			return nil, nil, errors.New("JWT_PUBLIC_KEY_FILE or JWT_PRIVATE_KEY_FILE is required in prod")
		}
		kp, err := cryptox.GenerateEd25519KeyPair()
		if err != nil {
			return nil, nil, fmt.Errorf("generate ephemeral jwt key: %w", err)
		}
		logger.Warn("no EdDSA key configured, using an ephemeral key pair")
		return edDSAFromPEM(kp.PrivatePEM, kp.PublicPEM, opts.Issuer, logger)

	case opts.PublicKeyFile == "":
		privPEM, err := os.ReadFile(opts.PrivateKeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("read jwt private key: %w", err)
		}
		pubPEM, err := cryptox.Ed25519PublicKeyPEM(privPEM)
		if err != nil {
			return nil, nil, fmt.Errorf("derive jwt public key: %w", err)
		}
		return edDSAFromPEM(privPEM, pubPEM, opts.Issuer, logger)
	}

	verifier, err := jwtx.NewVerifier(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt verifier: %w", err)
	}

	signer, err := jwtx.NewSigner(opts)
	switch {
	case errors.Is(err, jwtx.ErrNoKey):
		logger.Info("no signing key configured, token issuance disabled")
		return verifier, nil, nil
	case err != nil:
		return nil, nil, fmt.Errorf("jwt signer: %w", err)
	}
	return withSigner(verifier, signer, logger)
}

func edDSAFromPEM(privPEM, pubPEM []byte, issuer string, logger *slog.Logger) (jwtx.Verifier, jwtx.Signer, error) {
	verifier, err := jwtx.NewVerifierEdDSA(pubPEM, issuer)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt verifier: %w", err)
	}
	signer, err := jwtx.NewSignerEdDSA("", privPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt signer: %w", err)
	}
	return withSigner(verifier, signer, logger)
}

func withSigner(verifier jwtx.Verifier, signer jwtx.Signer, logger *slog.Logger) (jwtx.Verifier, jwtx.Signer, error) {
	if err := signer.Validate(); err != nil {
		return nil, nil, err
	}
	logger.Info("jwt keys loaded", "alg", signer.Alg())
	return verifier, signer, nil
}

func isEdDSA(alg string) bool {
	switch strings.ToUpper(strings.TrimSpace(alg)) {
	case "EDDSA", "ED25519":
		return true
	}
	return false
}
