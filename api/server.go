package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/controllers"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/transport"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/email"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Open the database once at startup so a missing or wrong DATABASE_URL
	// fails the process here, not on the first request.
	db, err := sql.Open("postgres", s.config.DatabaseURL)
	if err != nil {
		logging.Log.Errorf("failed to open database: %v", err)
		panic("failed to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logging.Log.Errorf("failed to reach database: %v", err)
		panic("failed to reach database")
	}
	if err := storage.Migrate(ctx, db); err != nil {
		logging.Log.Errorf("failed to migrate database: %v", err)
		panic("failed to migrate database")
	}

	applicationStorage := &storage.PostgresApplicationStorage{DB: db}
	nominationStorage := &storage.PostgresNominationStorage{DB: db}

	mailer := email.NewMailer(
		s.config.ResendAPIKey,
		s.config.FromEmail,
		s.config.OrganizerEmail,
		s.config.ContactRecipient,
	)

	//Register controllers
	speakersController := controllers.NewSpeakersController(applicationStorage, nominationStorage, mailer)
	speakersController.RegisterRoutes(r)
	submissionsController := controllers.NewSubmissionsController(applicationStorage, nominationStorage)
	submissionsController.RegisterRoutes(r)
	contactController := controllers.NewContactController(mailer)
	contactController.RegisterRoutes(r)

	if s.config.BetterAuthURL != "" {
		authController, err := controllers.NewAuthController(s.config.BetterAuthURL)
		if err != nil {
			logging.Log.Errorf("failed to configure auth proxy: %v", err)
			panic("failed to configure auth proxy")
		}
		authController.RegisterRoutes(r)
	} else {
		logging.Log.Warn("BETTER_AUTH_URL not set, /api/auth routes are disabled")
	}

	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", s.config.Port))
	if err := r.Run(fmt.Sprintf(":%d", s.config.Port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
