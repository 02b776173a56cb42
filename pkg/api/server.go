package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/shaft/pkg/api/handlers"
	"github.com/cbodonnell/shaft/pkg/api/middleware"
	authproviders "github.com/cbodonnell/shaft/pkg/auth/providers"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	AuthProvider authproviders.AuthProvider
	Repository   repositories.Repository
	// Accounts is optional. It serves sign up and sign in under /accounts.
	Accounts *handlers.AccountsHandler
}

// NewRouter routes the leaderboard API. Reading is public, submitting a score
// needs a bearer token.
func NewRouter(authProvider authproviders.AuthProvider, repository repositories.Repository) *mux.Router {
	authMiddleware := middleware.NewAuthMiddleware(authProvider)

	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	r.HandleFunc("/boards", handlers.HandleListBoards(repository)).Methods(http.MethodGet)
	r.HandleFunc("/boards/{board}/scores", handlers.HandleListScores(repository)).Methods(http.MethodGet)
	r.Handle("/boards/{board}/scores", authMiddleware(handlers.HandleSubmitScore(repository))).Methods(http.MethodPost)
	r.HandleFunc("/scores/{id}", handlers.HandleGetScore(repository)).Methods(http.MethodGet)

	return r
}

// RegisterAccountRoutes mounts the email and password account endpoints.
func RegisterAccountRoutes(r *mux.Router, accounts *handlers.AccountsHandler) {
	r.HandleFunc("/accounts/register", accounts.HandleRegister()).Methods(http.MethodPost)
	r.HandleFunc("/accounts/login", accounts.HandleLogin()).Methods(http.MethodPost)
	r.HandleFunc("/accounts/refresh", accounts.HandleRefresh()).Methods(http.MethodPost)
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	router := NewRouter(opts.AuthProvider, opts.Repository)
	if opts.Accounts != nil {
		RegisterAccountRoutes(router, opts.Accounts)
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
