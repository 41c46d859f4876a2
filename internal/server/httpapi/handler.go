package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/svcadmin/internal/common"
	"github.com/dmitrijs2005/svcadmin/internal/server/models"
)

// invalidCredentialsMessage is returned verbatim for every login failure so
// an unknown email and a wrong password are indistinguishable to the caller.
const invalidCredentialsMessage = "Invalid credentials"

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// userResponse deliberately has no field for the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

type userUpdateRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type serviceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type serviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toServiceResponse(s *models.Service) serviceResponse {
	return serviceResponse{ID: s.ID, Name: s.Name, Description: s.Description, CreatedAt: s.CreatedAt}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *HTTPServer) internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// --- auth ---

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	_, err := s.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password are required"})
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		s.internalError(w)
		return
	}

	s.logger.Info(r.Context(), "registered user")
	writeJSON(w, http.StatusCreated, messageResponse{Message: "user created"})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: invalidCredentialsMessage})
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: invalidCredentialsMessage})
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		s.internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// --- users CRUD ---

func (s *HTTPServer) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing users failed", "error", err.Error())
		s.internalError(w)
		return
	}

	result := make([]userResponse, 0, len(list))
	for _, u := range list {
		result = append(result, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		s.internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *HTTPServer) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	u, err := s.users.Update(r.Context(), r.PathValue("id"), req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email is required"})
		default:
			s.internalError(w)
		}
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *HTTPServer) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		s.internalError(w)
		return
	}

	actor, _ := UserIDFromContext(r.Context())
	s.logger.Info(r.Context(), "user deleted", "user_id", r.PathValue("id"), "actor_id", actor)
	writeJSON(w, http.StatusOK, messageResponse{Message: "user deleted"})
}

// --- services CRUD ---

func (s *HTTPServer) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	svc, err := s.services.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
			return
		}
		s.internalError(w)
		return
	}
	writeJSON(w, http.StatusCreated, toServiceResponse(svc))
}

func (s *HTTPServer) handleListServices(w http.ResponseWriter, r *http.Request) {
	list, err := s.services.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing services failed", "error", err.Error())
		s.internalError(w)
		return
	}

	result := make([]serviceResponse, 0, len(list))
	for _, svc := range list {
		result = append(result, toServiceResponse(svc))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleGetService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.services.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		s.internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

func (s *HTTPServer) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	svc, err := s.services.Update(r.Context(), r.PathValue("id"), req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		default:
			s.internalError(w)
		}
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

func (s *HTTPServer) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		s.internalError(w)
		return
	}

	actor, _ := UserIDFromContext(r.Context())
	s.logger.Info(r.Context(), "service deleted", "service_id", r.PathValue("id"), "actor_id", actor)
	writeJSON(w, http.StatusOK, messageResponse{Message: "service deleted"})
}
