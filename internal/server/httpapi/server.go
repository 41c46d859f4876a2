// Package httpapi exposes the HTTP/JSON surface of the server: the auth
// endpoints plus CRUD management for users and services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/svcadmin/internal/logging"
	"github.com/dmitrijs2005/svcadmin/internal/server/services"
)

type HTTPServer struct {
	address  string
	logger   logging.Logger
	auth     *services.AuthService
	users    *services.UserAdminService
	services *services.ServiceAdminService
}

func NewHTTPServer(a string, l logging.Logger, as *services.AuthService, us *services.UserAdminService, ss *services.ServiceAdminService) (*HTTPServer, error) {
	return &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		auth:     as,
		users:    us,
		services: ss,
	}, nil
}

// Handler builds the full route table. Auth endpoints are public; everything
// else sits behind the bearer-token middleware.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.Handle("GET /api/users", s.requireAuth(http.HandlerFunc(s.handleListUsers)))
	mux.Handle("GET /api/users/{id}", s.requireAuth(http.HandlerFunc(s.handleGetUser)))
	mux.Handle("PUT /api/users/{id}", s.requireAuth(http.HandlerFunc(s.handleUpdateUser)))
	mux.Handle("DELETE /api/users/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteUser)))

	mux.Handle("POST /api/services", s.requireAuth(http.HandlerFunc(s.handleCreateService)))
	mux.Handle("GET /api/services", s.requireAuth(http.HandlerFunc(s.handleListServices)))
	mux.Handle("GET /api/services/{id}", s.requireAuth(http.HandlerFunc(s.handleGetService)))
	mux.Handle("PUT /api/services/{id}", s.requireAuth(http.HandlerFunc(s.handleUpdateService)))
	mux.Handle("DELETE /api/services/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteService)))

	return s.logRequests(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
