package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberworks/forgefront-backend/api/controllers"
	cartcontrollers "github.com/emberworks/forgefront-backend/api/controllers/cart"
	configuratorcontrollers "github.com/emberworks/forgefront-backend/api/controllers/configurator"
	"github.com/emberworks/forgefront-backend/api/middleware"
	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/internal/renderer"
	"github.com/emberworks/forgefront-backend/internal/session"
	"github.com/emberworks/forgefront-backend/pkg/config"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogReg *catalog.Registry,
	sessionReg *session.Registry,
	collab *renderer.Collaborator,
	m *metrics.StorefrontMetrics,
	promReg *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if promReg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(sessionReg, cfg.Session, logg))

		r.Get("/ping", controllers.StorefrontPing())
		r.Get("/session", controllers.SessionState(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogReg, logg))
			r.Get("/{productId}", controllers.CatalogDetail(catalogReg, logg))
		})

		r.Route("/preview", func(r chi.Router) {
			r.Post("/{productId}/open", controllers.PreviewOpen(catalogReg, logg))
			r.Post("/close", controllers.PreviewClose(logg))
			r.Get("/render", controllers.PreviewRender(logg))
			r.Post("/hover", controllers.PreviewHover(collab, logg))
			r.Post("/load-failure", controllers.PreviewLoadFailure(collab, logg))
			r.Post("/add-to-cart", controllers.PreviewAddToCart(m, logg))
		})

		r.Route("/configurator", func(r chi.Router) {
			r.Get("/", configuratorcontrollers.Fetch(logg))
			r.Post("/advance", configuratorcontrollers.Advance(logg))
			r.Post("/retreat", configuratorcontrollers.Retreat(logg))
			r.Put("/length", configuratorcontrollers.SetLength(logg))
			r.Post("/add-to-cart", configuratorcontrollers.AddToCart(m, logg))
			r.Post("/reset", configuratorcontrollers.Reset(logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(logg))
			r.Post("/items", cartcontrollers.CartAddItem(catalogReg, m, logg))
			r.Patch("/items/{productId}", cartcontrollers.CartUpdateItem(m, logg))
			r.Delete("/items/{productId}", cartcontrollers.CartRemoveItem(m, logg))
			r.Post("/open", controllers.CartDialogOpen(logg))
			r.Post("/close", controllers.CartDialogClose(logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/begin", controllers.CheckoutBegin(logg))
			r.Post("/cancel", controllers.CheckoutCancel(logg))
			r.Post("/submit", controllers.CheckoutSubmit(m, logg))
		})
	})

	return r
}
