package api

import (
	"net/http"
	"time"

	"github.com/dm-mensavi/task-management/internal/api/shared"
	"github.com/dm-mensavi/task-management/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService auth.AuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{authService: authService}
}

// SignUp handles the /auth/signup endpoint.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	message, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.MessageResponse{Message: message})
}

// SignIn handles the /auth/signin endpoint.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	result, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignInResponse{
		Message:   result.Message,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (*CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return nil, false
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			shared.ValidationMessage(err, "Validation error"), err)
		return nil, false
	}
	return &req, true
}
