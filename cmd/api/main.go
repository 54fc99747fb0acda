package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/brightpath/care-api/internal/config"
	"github.com/brightpath/care-api/internal/email"
	"github.com/brightpath/care-api/internal/handler"
	appointmentHandler "github.com/brightpath/care-api/internal/handler/appointment"
	assessmentHandler "github.com/brightpath/care-api/internal/handler/assessment"
	authHandler "github.com/brightpath/care-api/internal/handler/auth"
	doctorHandler "github.com/brightpath/care-api/internal/handler/doctor"
	hospitalHandler "github.com/brightpath/care-api/internal/handler/hospital"
	messageHandler "github.com/brightpath/care-api/internal/handler/message"
	"github.com/brightpath/care-api/internal/middleware"
	"github.com/brightpath/care-api/internal/repository/postgres"
	"github.com/brightpath/care-api/internal/router"
	appointmentService "github.com/brightpath/care-api/internal/service/appointment"
	authService "github.com/brightpath/care-api/internal/service/auth"
	doctorService "github.com/brightpath/care-api/internal/service/doctor"
	hospitalService "github.com/brightpath/care-api/internal/service/hospital"
	"github.com/brightpath/care-api/internal/service/intake"
	"github.com/brightpath/care-api/internal/service/notification"
	"github.com/brightpath/care-api/pkg/auth"
	"github.com/brightpath/care-api/pkg/messaging"
	redisBroker "github.com/brightpath/care-api/pkg/messaging/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	hospitalRepo := postgres.NewHospitalRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	assessmentRepo := postgres.NewAssessmentRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	testimonialRepo := postgres.NewTestimonialRepository(db)

	// Message broker for intake fan-out. The API keeps working without
	// it; delivery is best effort.
	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redisBroker.NewRedisBroker(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.JWT)
	authSvc := authService.NewService(userRepo, jwtSvc)
	hospitalSvc := hospitalService.NewService(hospitalRepo, doctorRepo)
	doctorSvc := doctorService.NewService(doctorRepo, testimonialRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo)
	notifySvc := notification.NewService(messageRepo, broker, email.NewSender(cfg.Email), cfg.Email.Inbox)
	intakeSvc := intake.NewService(assessmentRepo, doctorRepo, notifySvc, intake.NewScorer(cfg.Scoring))

	// Middleware and handlers
	middleware.RegisterValidators()
	authMW := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc)
	hospitalH := hospitalHandler.NewHandler(hospitalSvc, authMW)
	doctorH := doctorHandler.NewHandler(doctorSvc, hospitalSvc, authMW)
	assessmentH := assessmentHandler.NewHandler(intakeSvc, authMW)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc, authMW)
	messageH := messageHandler.NewHandler(notifySvc, authMW)

	r := router.NewRouter(authH, hospitalH, doctorH, assessmentH, appointmentH, messageH, h, router.RouterConfig{
		RateLimit:     rate.Limit(cfg.RateLimit.RPS),
		RateBurst:     cfg.RateLimit.Burst,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "care_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
