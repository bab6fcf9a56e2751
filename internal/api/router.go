package api

import (
	"net/http"
	"path/filepath"
	"realestate_crud/internal/api/handler"
	"realestate_crud/internal/api/middleware"
	"realestate_crud/internal/app/service"
	"realestate_crud/internal/common/security"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

// publicAssets is the fixed set of static pages the frontend loads
// without a session.
var publicAssets = []string{
	"/home.html",
	"/index.html",
	"/script.js",
	"/home.js",
	"/home.css",
	"/styles.css",
}

func NewRouter(
	authService *service.AuthService,
	propertyService *service.PropertyService,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Static assets (public). The root serves the login page.
	fs := http.FileServer(http.Dir(staticDir))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})
	for _, asset := range publicAssets {
		r.Get(asset, fs.ServeHTTP)
	}
	r.Handle("/images/*", fs)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)

	// Auth routes (public)
	r.Route("/auth", authHandler.RegisterRoutes)

	r.Route("/api", func(api chi.Router) {
		// Property routes (public, including mutation; the access policy
		// of the frontend this serves leaves all of /api/properties open)
		api.Route("/properties", propertyHandler.RegisterRoutes)

		// Everything else under /api requires a valid token
		api.Group(func(protected chi.Router) {
			protected.Use(jwtauth.Verifier(security.TokenAuth))
			protected.Use(middleware.Authenticator)
			authHandler.RegisterProtectedRoutes(protected)
		})
	})

	return r
}
