package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rifa-premiada/backend/config"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/pkg/authenticator"
	"github.com/rifa-premiada/backend/pkg/logger"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)
type MiddlewareFunc func(ctx context.Context) (context.Context, error)
type CloserFunc func(ctx context.Context)

type Router struct {
	engine *gin.Engine
	inner  gin.IRouter

	configs     config.Configs
	logger      logger.Logger
	db          *gorm.DB
	tokenEngine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		engine:  engine,
		inner:   engine,
		configs: cfg,
		logger:  logger,
		db:      db,
		tokenEngine: authenticator.NewTokenEngine[model.AccessToken](
			cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration),
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r.copy(), http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r.copy(), http.MethodPost, handler))
}

// Branch returns a router sharing the same routes but with its own copy of
// middlewares. Middlewares added to the branch do not affect the parent.
func (r *Router) Branch() *Router {
	return r.copy()
}

// Group is like Branch but every route registered on it is prefixed.
func (r *Router) Group(prefix string) *Router {
	clone := r.copy()
	clone.inner = r.inner.Group(prefix)
	return clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

// Handler returns the http.Handler of the root router. Cross-origin requests
// are accepted from the configured origins, or from any origin if none is
// configured.
func (r *Router) Handler(cfg config.APIServerConfigs) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
	}

	if len(cfg.AllowedOrigins) > 0 {
		opts.AllowedOrigins = cfg.AllowedOrigins
	} else {
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(opts).Handler(r.engine)
}

func (r *Router) copy() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) newContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	ctx = xcontext.WithConfigs(ctx, r.configs)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
	ctx = xcontext.WithHTTPRequest(ctx, c.Request)
	ctx = xcontext.WithResponseWriter(ctx, c.Writer)
	return ctx
}
