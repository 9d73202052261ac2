package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	authUC "github.com/KN-gho/timebudget/internal/auth/usecase"
	"github.com/KN-gho/timebudget/pkg/deadline"
	"github.com/KN-gho/timebudget/pkg/log"
	"github.com/KN-gho/timebudget/pkg/openai"
	"github.com/KN-gho/timebudget/pkg/pressure"
	"github.com/KN-gho/timebudget/pkg/weather"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// External clients and core collaborators
	ai       openai.IOpenAI
	weather  weather.IWeather
	resolver *deadline.Resolver
	calc     *pressure.Calculator

	// Auth
	googleOAuth authUC.Config
	sessionTTL  int // hours
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	OpenAI   openai.IOpenAI
	Weather  weather.IWeather
	Resolver *deadline.Resolver
	Calc     *pressure.Calculator

	GoogleOAuth authUC.Config
	SessionTTL  int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		ai:          cfg.OpenAI,
		weather:     cfg.Weather,
		resolver:    cfg.Resolver,
		calc:        cfg.Calc,
		googleOAuth: cfg.GoogleOAuth,
		sessionTTL:  cfg.SessionTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.resolver == nil {
		return errors.New("deadline resolver is required")
	}
	if srv.calc == nil {
		return errors.New("pressure calculator is required")
	}
	return nil
}
