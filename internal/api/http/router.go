package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wad01/wad/internal/api/assets"
	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/jwtx"
	"github.com/wad01/wad/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/wad01/wad/api/wad" // Swagger docs
)

// DefaultMaxUploadBytes bounds the multipart body of an image upload.
const DefaultMaxUploadBytes int64 = 5 << 20

// Options carries the HTTP settings that come from configuration.
type Options struct {
	Env            string
	MaxUploadBytes int64
	RateLimits     httpx.RateLimits
	CORS           httpx.CORSConfig
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	opts         Options

	store          store.Store
	assets         assets.Store
	ProfileService *service.ProfileService
	ImageService   *service.ImageService
	UserService    *service.UserService
	ItemService    *service.ItemService
	TokenService   *service.TokenService // Optional: nil when no signing key is configured
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	files assets.Store,
	logger *slog.Logger,
	opts Options,
) *Router {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.RateLimits == (httpx.RateLimits{}) {
		opts.RateLimits = httpx.DefaultRateLimits()
	}
	if opts.CORS.AllowMethods == nil {
		origin := opts.CORS.AllowOrigin
		opts.CORS = httpx.DefaultCORSConfig()
		if origin != "" {
			opts.CORS.AllowOrigin = origin
		}
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		opts:         opts,
		store:        st,
		assets:       files,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.CORS),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProfile()
	r.registerUsers()
	r.registerItems()
	r.registerAuth()
	r.registerAssets()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			wad API
//	@version		0.1.0
//	@description	User and item documents with authenticated profile and profile image management.
//	@description
//	@description				Profile endpoints require a bearer token carrying an email claim.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProfile() {
	limits := r.opts.RateLimits
	profile := &ProfileHandler{ProfileService: r.ProfileService}
	image := &ProfileImageHandler{ImageService: r.ImageService, MaxUploadBytes: r.opts.MaxUploadBytes}

	secured := func(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier), // verify JWT, inject identity
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /user/profile", secured(profile.HandleGet, limits.Lenient))
	r.Mux.Handle("PATCH /user/profile", secured(profile.HandlePatch, limits.Moderate))

	// Uploads write to the asset store, keep them tighter
	r.Mux.Handle("POST /user/profile/image", secured(image.HandleUpload, limits.Strict))
	r.Mux.Handle("DELETE /user/profile/image", secured(image.HandleDelete, limits.Moderate))
}

func (r *Router) registerUsers() {
	limits := r.opts.RateLimits
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /user", httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(limits.Lenient)))
	r.Mux.Handle("POST /user", httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(limits.Moderate)))
	r.Mux.Handle("PUT /user/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(limits.Moderate)))
	r.Mux.Handle("DELETE /user/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(limits.Moderate)))

	seed := &SeedHandler{UserService: r.UserService, Env: r.opts.Env}
	r.Mux.Handle("POST /admin/seed-test-user", httpx.Chain(seed, httpx.RateLimitByIP(limits.Strict)))
}

func (r *Router) registerItems() {
	limits := r.opts.RateLimits
	h := &ItemsHandler{ItemService: r.ItemService}

	r.Mux.Handle("GET /item", httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(limits.Lenient)))
	r.Mux.Handle("POST /item", httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(limits.Moderate)))
	r.Mux.Handle("PUT /item/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(limits.Moderate)))
	r.Mux.Handle("DELETE /item/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(limits.Moderate)))
}

func (r *Router) registerAuth() {
	if r.TokenService == nil {
		return
	}

	// POST /auth/token - strict rate limit by IP (password attempts)
	h := &TokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /auth/token", httpx.Chain(h, httpx.RateLimitByIP(r.opts.RateLimits.Strict)))
}

func (r *Router) registerAssets() {
	h := &AssetHandler{Assets: r.assets}
	r.Mux.Handle("GET "+assets.PathPrefix+"{name}", httpx.Chain(h, httpx.RateLimitByIP(r.opts.RateLimits.Public)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.opts.RateLimits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.assets),
			httpx.RateLimitByIP(r.opts.RateLimits.Lenient),
		),
	)
}
