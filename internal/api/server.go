package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steppulse/steppulse/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	registrationService service.RegistrationServiceI
	syncService         service.SyncServiceI
	streakService       service.StreakServiceI
	dashboardService    service.DashboardServiceI
	jwtService          JwtServiceI
}

type ServicesList struct {
	RegistrationService service.RegistrationServiceI
	SyncService         service.SyncServiceI
	StreakService       service.StreakServiceI
	DashboardService    service.DashboardServiceI
	JwtService          JwtServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil {
		log.Fatal("on api server provided nil services list")
	}
	s := &Server{
		mx:                  chi.NewMux(),
		registrationService: servicesOptions.RegistrationService,
		syncService:         servicesOptions.SyncService,
		streakService:       servicesOptions.StreakService,
		dashboardService:    servicesOptions.DashboardService,
		jwtService:          servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Get("/session", s.DeviceSession)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Post("/steps/sync", s.SyncSteps)
			r.Get("/steps/recent", s.RecentSteps)
			r.Get("/steps/history", s.StepsHistory)
			r.Put("/status", s.UpdateStatus)
			r.Post("/streak/reconcile", s.ReconcileStreak)
			r.Get("/streak", s.GetStreak)
			r.Get("/streak/achievements", s.GetAchievements)
			r.Get("/streak/milestones", s.GetMilestones)
			r.Get("/streak/milestones/next", s.NextMilestone)
			r.Get("/dashboard", s.Dashboard)
		})
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mx
}
