/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/apartments/*     Apartment master data
  /api/tenants/*        Tenant master data
  /api/contracts/*      Rental contracts
  /api/cost-types/*     Cost types and their allocation policies
  /api/shares           Static allocation key values
  /api/consumption      Metered consumption records
  /api/occupancy        Occupancy periods
  /api/invoices/*       Invoice recording
  /api/allocations/*    Direct allocator invocations
  /api/statements/*     Statement preview

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. The
// allowed CORS origins come from configuration; an empty list falls
// back to local development origins.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Master data routes
		r.Route("/apartments", func(r chi.Router) {
			r.Get("/", h.ListApartments)
			r.Post("/", h.CreateApartment)
		})
		r.Route("/tenants", func(r chi.Router) {
			r.Get("/", h.ListTenants)
			r.Post("/", h.CreateTenant)
		})
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ListContracts)
			r.Post("/", h.CreateContract)
		})
		r.Route("/cost-types", func(r chi.Router) {
			r.Get("/", h.ListCostTypes)
			r.Post("/", h.CreateCostType)
		})
		r.Route("/shares", func(r chi.Router) {
			r.Get("/", h.ListShares)
			r.Post("/", h.CreateShare)
		})
		r.Route("/consumption", func(r chi.Router) {
			r.Get("/", h.SumConsumption)
			r.Post("/", h.CreateConsumption)
		})
		r.Route("/occupancy", func(r chi.Router) {
			r.Get("/", h.ListOccupancy)
			r.Post("/", h.CreateOccupancy)
		})
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.ListInvoices)
			r.Post("/", h.CreateInvoice)
		})

		// Allocation routes
		r.Route("/allocations", func(r chi.Router) {
			r.Post("/share", h.AllocateShare)
			r.Post("/consumption", h.AllocateConsumption)
			r.Post("/person-days", h.AllocatePersonDays)
			r.Post("/heating", h.AllocateHeating)
			r.Post("/direct", h.AllocateDirect)
			r.Post("/combined", h.AllocateCombined)
		})

		// Statement routes
		r.Route("/statements", func(r chi.Router) {
			r.Post("/preview", h.PreviewStatement)
		})
	})

	return r
}
