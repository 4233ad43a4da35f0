package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"menu-eva/internal/handler"
	"menu-eva/internal/middleware"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Categories *handler.CategoryHandler
	Products   *handler.ProductHandler
	Promotions *handler.PromotionHandler
	Discounts  *handler.DiscountHandler
	Auth       *handler.AuthHandler
	Admin      *handler.AdminHandler
	Upload     *handler.UploadHandler
}

// New creates the HTTP router with all routes and middleware configured.
// Reads are public; every mutation sits behind the admin bearer token.
func New(h Handlers, verifier middleware.TokenVerifier, uploadDir string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	requireAdmin := middleware.RequireAdmin(verifier, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Locally stored uploads are served from the same tree they are
	// written to.
	if uploadDir != "" {
		fs := http.StripPrefix("/images/", http.FileServer(http.Dir(uploadDir)))
		r.Get("/images/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Categories.GetAll)
			r.Get("/{id}", h.Categories.GetByID)
			r.With(requireAdmin).Post("/", h.Categories.Create)
			r.With(requireAdmin).Put("/{id}", h.Categories.Update)
			r.With(requireAdmin).Delete("/{id}", h.Categories.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.GetAll)
			r.Get("/bestsellers", h.Products.GetBestsellers)
			r.Get("/{id}", h.Products.GetByID)
			r.With(requireAdmin).Post("/", h.Products.Create)
			r.With(requireAdmin).Put("/{id}", h.Products.Update)
			r.With(requireAdmin).Delete("/{id}", h.Products.Delete)
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", h.Promotions.GetAll)
			r.Get("/{id}", h.Promotions.GetByID)
			r.With(requireAdmin).Post("/", h.Promotions.Create)
			r.With(requireAdmin).Put("/{id}", h.Promotions.Update)
			r.With(requireAdmin).Delete("/{id}", h.Promotions.Delete)
		})

		r.Route("/discounts", func(r chi.Router) {
			r.Get("/", h.Discounts.GetAll)
			r.Get("/code/{code}", h.Discounts.GetByCode)
			r.Post("/redeem", h.Discounts.Redeem)
			r.Get("/{id}", h.Discounts.GetByID)
			r.With(requireAdmin).Post("/", h.Discounts.Create)
			r.With(requireAdmin).Put("/{id}", h.Discounts.Update)
			r.With(requireAdmin).Delete("/{id}", h.Discounts.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/verify", h.Auth.Verify)
			r.With(requireAdmin).Get("/cleanup-expired-new-products", h.Admin.ListExpiredNew)
			r.With(requireAdmin).Post("/cleanup-expired-new-products", h.Admin.CleanupExpiredNew)
		})

		r.With(requireAdmin).Post("/upload", h.Upload.Upload)
	})

	return r
}
