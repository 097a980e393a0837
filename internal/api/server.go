package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type Server struct {
	mx               *chi.Mux
	accountService   service.AccountServiceI
	wasteLogService  service.WasteLogServiceI
	bookingService   service.BookingServiceI
	paymentService   service.PaymentServiceI
	messageService   service.MessageServiceI
	settingsService  service.SettingsServiceI
	trackingService  service.TrackingServiceI
	complaintService service.ComplaintServiceI
	feedbackService  service.FeedbackServiceI
	chatService      service.ChatServiceI
	jwtService       JWTServiceI
	metricsHandler   http.Handler
}

type ServicesList struct {
	AccountService   service.AccountServiceI
	WasteLogService  service.WasteLogServiceI
	BookingService   service.BookingServiceI
	PaymentService   service.PaymentServiceI
	MessageService   service.MessageServiceI
	SettingsService  service.SettingsServiceI
	TrackingService  service.TrackingServiceI
	ComplaintService service.ComplaintServiceI
	FeedbackService  service.FeedbackServiceI
	ChatService      service.ChatServiceI
	JwtService       JWTServiceI
	// Serves /metrics when set
	MetricsHandler http.Handler
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		accountService:   servicesOptions.AccountService,
		wasteLogService:  servicesOptions.WasteLogService,
		bookingService:   servicesOptions.BookingService,
		paymentService:   servicesOptions.PaymentService,
		messageService:   servicesOptions.MessageService,
		settingsService:  servicesOptions.SettingsService,
		trackingService:  servicesOptions.TrackingService,
		complaintService: servicesOptions.ComplaintService,
		feedbackService:  servicesOptions.FeedbackService,
		chatService:      servicesOptions.ChatService,
		jwtService:       servicesOptions.JwtService,
		metricsHandler:   servicesOptions.MetricsHandler,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.RealIP)
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/healthz", s.Health)
	if s.metricsHandler != nil {
		s.mx.Handle("/metrics", s.metricsHandler)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", s.Signup)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/staff/login", s.StaffLogin)
		r.Post("/auth/admin/login", s.AdminLogin)
		r.Get("/plans", s.GetPlans)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/me", s.GetMe)
			r.Patch("/me", s.UpdateMe)
			r.Get("/messages", s.ListMessages)
			r.Post("/messages/read", s.MarkMessagesRead)
			r.Get("/broadcast", s.GetBroadcast)
			r.Post("/chat", s.Chat)
			r.Get("/tracking/driver", s.GetActiveDriver)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(entity.RoleHousehold))
				r.Post("/waste-logs", s.LogWaste)
				r.Get("/waste-logs", s.ListWasteLogs)
				r.Post("/bookings", s.CreateBooking)
				r.Get("/bookings", s.ListBookings)
				r.Post("/payments", s.SubmitPayment)
				r.Get("/payments", s.ListPayments)
				r.Post("/complaints", s.FileComplaint)
				r.Get("/complaints", s.ListComplaints)
				r.Post("/feedback", s.SubmitFeedback)
				r.Get("/tracking/eta", s.GetETA)
			})

			r.With(RequireRole(entity.RoleEmployee, entity.RoleDriver)).Post("/staff/location", s.UpdateLocation)

			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireRole(entity.RoleAdmin))
				r.Get("/accounts", s.ListAccounts)
				r.Post("/accounts", s.ProvisionAccount)
				r.Get("/accounts/{id}", s.GetAccount)
				r.Delete("/accounts/{id}", s.DeleteAccount)
				r.Post("/accounts/{id}/warning", s.WarnAccount)
				r.Delete("/accounts/{id}/warning", s.ClearWarning)
				r.Put("/accounts/{id}/blocked", s.SetBlocked)
				r.Put("/accounts/{id}/attendance", s.SetAttendance)
				r.Post("/accounts/{id}/messages", s.SendMessage)
				r.Get("/payments", s.ListPaymentsByStatus)
				r.Post("/payments/{id}/review", s.ReviewPayment)
				r.Get("/bookings", s.ListAllBookings)
				r.Post("/bookings/{id}/complete", s.CompleteBooking)
				r.Put("/bookings/{id}/fee", s.AdjustBookingFee)
				r.Get("/complaints", s.ListAllComplaints)
				r.Put("/complaints/{id}/status", s.SetComplaintStatus)
				r.Get("/feedback", s.ListFeedback)
				r.Put("/plans", s.UpdatePlans)
				r.Put("/broadcast", s.SetBroadcast)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

const shutdownTimeout = 10 * time.Second

// Run serves on addr until ctx is done, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
