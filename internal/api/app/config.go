package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wad01/wad/internal/api/store/drivers/mongo"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/jwtx"
)

// Store and asset drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
	DriverLocal  = "local"
	DriverS3     = "s3"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	StoreDriver   string // sqlite or mongo (default: sqlite)
	DatabaseFile  string // SQLite database file (default: ./wad.db)
	MongoURI      string // Required for the mongo driver
	MongoDatabase string // Mongo database name (default: wad01)

	AssetDriver string // local or s3 (default: local)
	PublicDir   string // Root of the local asset directory (default: ./public)
	S3          S3Config

	JWTAlgorithm      string        // HS256 or EdDSA (default: HS256)
	JWTSecret         string        // HS256 shared secret
	JWTPublicKeyFile  string        // EdDSA verification key (PEM)
	JWTPrivateKeyFile string        // Optional: EdDSA signing key (PEM), enables /auth/token
	JWTIssuer         string        // Optional: required "iss" claim
	TokenTTL          time.Duration // Access token lifetime (default: 1h)

	MaxUploadBytes  int64  // Upload body limit (default: 5 MiB)
	CORSAllowOrigin string // Access-Control-Allow-Origin (default: *)
	RateLimits      httpx.RateLimits
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// LoadConfig reads a .env file when present, then the process environment.
func LoadConfig() Config {
	_ = godotenv.Load() // a missing .env is normal
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	env := envReader(getenv)

	return Config{
		Env:                 env.str("ENV", "dev"),
		LogLevel:            env.str("LOG_LEVEL", "info"),
		LogFormat:           env.str("LOG_FORMAT", "json"),
		Port:                env.int("PORT", 8080),
		ShutdownGracePeriod: env.duration("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		StoreDriver:   strings.ToLower(env.str("STORE_DRIVER", DriverSQLite)),
		DatabaseFile:  env.str("DATABASE_FILE", "wad.db"),
		MongoURI:      getenv("MONGODB_URI"),
		MongoDatabase: env.str("MONGODB_DATABASE", mongo.DefaultDatabase),

		AssetDriver: strings.ToLower(env.str("ASSET_DRIVER", DriverLocal)),
		PublicDir:   env.str("PUBLIC_DIR", "public"),
		S3: S3Config{
			Bucket:    getenv("S3_BUCKET"),
			Region:    env.str("S3_REGION", "us-east-1"),
			Endpoint:  getenv("S3_ENDPOINT"),
			AccessKey: getenv("S3_ACCESS_KEY"),
			SecretKey: getenv("S3_SECRET_KEY"),
		},

		JWTAlgorithm:      env.str("JWT_ALGORITHM", jwtx.AlgorithmHS256),
		JWTSecret:         getenv("JWT_SECRET"),
		JWTPublicKeyFile:  getenv("JWT_PUBLIC_KEY_FILE"),
		JWTPrivateKeyFile: getenv("JWT_PRIVATE_KEY_FILE"),
		JWTIssuer:         getenv("JWT_ISSUER"),
		TokenTTL:          env.duration("TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		MaxUploadBytes:  int64(env.int("MAX_UPLOAD_BYTES", 5<<20)),
		CORSAllowOrigin: env.str("CORS_ALLOW_ORIGIN", "*"),
		RateLimits:      httpx.RateLimitsFromEnv(getenv),
	}
}

// Validate reports configuration that cannot start the service.
func (c Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required for the mongo driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	switch c.AssetDriver {
	case DriverLocal:
	case DriverS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 asset driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ASSET_DRIVER %q", c.AssetDriver))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %d", c.Port))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}

	return errors.Join(errs...)
}

// AssetDir is the directory of the local asset driver.
func (c Config) AssetDir() string {
	return filepath.Join(c.PublicDir, "profile-images")
}

type envReader func(string) string

func (e envReader) str(key, defaultValue string) string {
	if value := e(key); value != "" {
		return value
	}
	return defaultValue
}

func (e envReader) int(key string, defaultValue int) int {
	value := e(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func (e envReader) duration(key string, defaultValue time.Duration) time.Duration {
	value := e(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
