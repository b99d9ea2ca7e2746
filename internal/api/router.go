package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/horizon60/Horizon60-Backend/internal/api/handlers"
	custommiddleware "github.com/horizon60/Horizon60-Backend/internal/api/middleware"
	"github.com/horizon60/Horizon60-Backend/internal/config"
	"github.com/horizon60/Horizon60-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	accountService *service.AccountService,
	netWorthService *service.NetWorthService,
	projectionService *service.ProjectionService,
	priceService *service.PriceService,
	snapshotService *service.SnapshotService,
	settingsService *service.SettingsService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/accounts", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(accountService)
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			projectionHandler := handlers.NewProjectionHandler(projectionService)

			r.Get("/", accountHandler.Accounts)
			r.Post("/", accountHandler.CreateAccount)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", accountHandler.Account)
				r.Put("/", accountHandler.UpdateAccount)
				r.Delete("/", accountHandler.DeleteAccount)

				r.Post("/holdings", accountHandler.CreateHolding)
				r.Put("/holdings/{holdingId}", accountHandler.UpdateHolding)
				r.Delete("/holdings/{holdingId}", accountHandler.DeleteHolding)
				r.Post("/import", accountHandler.ImportHoldings)

				r.Get("/forecast", settingsHandler.ForecastSettings)
				r.Put("/forecast", settingsHandler.SaveForecastSettings)
				r.Get("/projection", projectionHandler.Account)
			})
		})

		r.Route("/networth", func(r chi.Router) {
			netWorthHandler := handlers.NewNetWorthHandler(netWorthService)
			r.Get("/", netWorthHandler.Summary)
		})

		r.Route("/projections", func(r chi.Router) {
			projectionHandler := handlers.NewProjectionHandler(projectionService)
			r.Get("/", projectionHandler.Portfolio)
		})

		r.Route("/prices", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(priceService)
			r.Get("/", priceHandler.Prices)
			r.Post("/sync", priceHandler.Sync)
		})

		r.Route("/snapshots", func(r chi.Router) {
			snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
			r.Get("/", snapshotHandler.Snapshots)
			r.Post("/", snapshotHandler.CreateSnapshot)
			r.Post("/capture", snapshotHandler.Capture)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", snapshotHandler.UpdateSnapshot)
				r.Delete("/", snapshotHandler.DeleteSnapshot)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			r.Get("/", settingsHandler.GlobalSettings)
			r.Put("/", settingsHandler.SaveGlobalSettings)
			r.Get("/credential", settingsHandler.CredentialStatus)
			r.Put("/credential", settingsHandler.SaveCredential)
			r.Delete("/credential", settingsHandler.DeleteCredential)
		})
	})

	return r
}
