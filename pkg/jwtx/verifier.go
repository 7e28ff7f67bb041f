package jwtx

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Supported JWT algorithms.
const (
	AlgorithmHS256 = "HS256"
	AlgorithmEdDSA = "EdDSA"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrUnsupported = errors.New("jwtx: unsupported algorithm")
	ErrNoKey       = errors.New("jwtx: no key configured")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// KeyOptions selects the algorithm and key material for a verifier/signer
// pair. Only the fields relevant to Algorithm are read.
type KeyOptions struct {
	Algorithm string
	Issuer    string

	// HS256
	Secret string

	// EdDSA, PEM files on disk
	PublicKeyFile  string
	PrivateKeyFile string
}

// NewVerifier builds the Verifier described by opts.
func NewVerifier(opts KeyOptions) (Verifier, error) {
	switch normalizeAlg(opts.Algorithm) {
	case AlgorithmHS256:
		if opts.Secret == "" {
			return nil, fmt.Errorf("%w: HS256 requires a secret", ErrNoKey)
		}
		return NewVerifierHS256([]byte(opts.Secret), opts.Issuer), nil

	case AlgorithmEdDSA:
		if opts.PublicKeyFile == "" {
			return nil, fmt.Errorf("%w: EdDSA requires a public key file", ErrNoKey)
		}
		pemKey, err := os.ReadFile(opts.PublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("jwtx: read public key: %w", err)
		}
		v, err := NewVerifierEdDSA(pemKey, opts.Issuer)
		if err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, opts.Algorithm)
	}
}

// NewSigner builds the Signer described by opts. It returns ErrNoKey when
// no signing material is configured, which callers may treat as "token
// issuance disabled".
func NewSigner(opts KeyOptions) (Signer, error) {
	switch normalizeAlg(opts.Algorithm) {
	case AlgorithmHS256:
		if opts.Secret == "" {
			return nil, ErrNoKey
		}
		return NewSignerHS256([]byte(opts.Secret)), nil

	case AlgorithmEdDSA:
		if opts.PrivateKeyFile == "" {
			return nil, ErrNoKey
		}
		pemKey, err := os.ReadFile(opts.PrivateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("jwtx: read private key: %w", err)
		}
		s, err := NewSignerEdDSA("", pemKey)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, opts.Algorithm)
	}
}

func normalizeAlg(alg string) string {
	switch strings.ToUpper(strings.TrimSpace(alg)) {
	case "", "HS256":
		return AlgorithmHS256
	case "EDDSA", "ED25519":
		return AlgorithmEdDSA
	default:
		return alg
	}
}
