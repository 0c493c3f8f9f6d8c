package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ShopDemo/internal/cart"
	"ShopDemo/internal/catalog"
	"ShopDemo/internal/config"
	"ShopDemo/internal/session"
	"ShopDemo/pkg/kit"
)

const maxBodyBytes = 1 << 20

// Server holds the shared per-process state the handlers operate on.
type Server struct {
	Log      *zap.Logger
	Sessions *session.Manager
	Products *catalog.Store
	Carts    *cart.Store
	Subs     *SubmissionLog
	Cfg      config.Config
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const (
	loginLimitPerMin = 5
	limitWindow      = 60 * time.Second
)

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	metricsOn := deps.MetricsEnabled && deps.Registry != nil
	if deps.MetricsEnabled && deps.Registry == nil && deps.Log != nil {
		deps.Log.Warn("metrics enabled but Registry is nil")
	}

	setupMiddleware(r, deps, metricsOn)
	setupRoutes(r, s, deps, metricsOn)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps, metricsOn bool) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if metricsOn {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RoutePattern))
	}
}

func setupRoutes(r *chi.Mux, s *Server, deps HTTPDeps, metricsOn bool) {
	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)

	r.Route("/auth", func(rr chi.Router) {
		rr.With(loginLimiter.Middleware).Post("/login", s.handleLogin)
		rr.Post("/logout", s.handleLogout)
	})

	r.Get("/profile", s.handleGetProfile)
	r.Put("/profile", s.handleUpdateProfile)

	r.Route("/products", func(rr chi.Router) {
		rr.Get("/", s.handleListProducts)
		rr.Post("/", s.handleCreateProduct)
		rr.Get("/categories", s.handleCategories)
		rr.Get("/category/{category}", s.handleProductsByCategory)
		rr.Get("/{id}", s.handleGetProduct)
		rr.Put("/{id}", s.handleUpdateProduct)
		rr.Patch("/{id}", s.handleUpdateProduct)
		rr.Delete("/{id}", s.handleDeleteProduct)
	})

	r.Route("/carts", func(rr chi.Router) {
		rr.Get("/", s.handleListCarts)
		rr.Post("/", s.handleCreateCart)
		rr.Get("/user/{userId}", s.handleCartsByUser)
		rr.Get("/{id}", s.handleGetCart)
		rr.Put("/{id}", s.handleUpdateCart)
		rr.Patch("/{id}", s.handleUpdateCart)
		rr.Delete("/{id}", s.handleDeleteCart)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/config", s.handleConfig)

	r.Post("/data", s.handleSubmitData)
	r.Get("/data", s.handleListData)

	if metricsOn {
		r.With(kit.MetricsAuth(deps.MetricsToken)).Handle(
			"/metrics",
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}),
		)
	}
}

// bearerToken extracts the token from the Authorization header, or "".
func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authz, "Bearer ")
}

// urlID parses the {id} route param. Non-numeric ids behave like missing
// rows, matching the original routes' integer constraint.
func urlID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}
