package httpserver

import (
	"net/http"
	"time"

	"barangay-records-go/internal/config"
	"barangay-records-go/internal/transport/httpserver/handler"
	authmw "barangay-records-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, auth *authmw.JWTAuth, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/auth/login", handlers.Login)
		r.Get("/setup", handlers.SetupStatus)
		r.Post("/setup", handlers.RunSetup)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/dashboard/summary", handlers.DashboardSummary)

			r.Get("/barangay", handlers.GetBarangay)
			r.Put("/barangay", handlers.SaveBarangay)

			r.Get("/households", handlers.ListHouseholds)
			r.Post("/households", handlers.CreateHousehold)
			r.Get("/households/{id}", handlers.GetHousehold)
			r.Put("/households/{id}", handlers.UpdateHousehold)
			r.Delete("/households/{id}", handlers.DeleteHousehold)

			r.Get("/residents", handlers.ListResidents)
			r.Post("/residents", handlers.CreateResident)
			r.Get("/residents/{id}", handlers.GetResident)
			r.Put("/residents/{id}", handlers.UpdateResident)
			r.Delete("/residents/{id}", handlers.DeleteResident)

			r.Get("/users", handlers.ListUsers)
			r.Post("/users", handlers.CreateUser)
			r.Get("/users/{id}", handlers.GetUser)
			r.Put("/users/{id}", handlers.UpdateUser)
			r.Delete("/users/{id}", handlers.DeleteUser)

			r.Get("/blotters", handlers.ListBlotters)
			r.Post("/blotters", handlers.CreateBlotter)
			r.Get("/blotters/{id}", handlers.GetBlotter)
			r.Put("/blotters/{id}", handlers.UpdateBlotter)
			r.Delete("/blotters/{id}", handlers.DeleteBlotter)

			r.Get("/certificates", handlers.ListCertificates)
			r.Post("/certificates", handlers.CreateCertificate)
			r.Get("/certificates/{id}", handlers.GetCertificate)
			r.Put("/certificates/{id}", handlers.UpdateCertificate)
			r.Delete("/certificates/{id}", handlers.DeleteCertificate)
		})
	})

	return r
}
