package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/service/auth"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/dm-mensavi/task-management/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", domain.NewValidationError("title", "cannot be empty"), http.StatusBadRequest, "title cannot be empty"},
		{"bare validation", domain.ErrValidation, http.StatusBadRequest, "Validation error"},
		{"duplicate username", auth.ErrDuplicateUsername, http.StatusConflict, MsgUsernameExists},
		{"duplicate task", fmt.Errorf("wrapped: %w", tasks.ErrDuplicateTask), http.StatusConflict, MsgTaskExists},
		{"user not found", auth.ErrUserNotFound, http.StatusNotFound, MsgUserNotFound},
		{"task not found", tasks.ErrTaskNotFound, http.StatusNotFound, MsgNoTaskFound},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized, MsgInvalidToken},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, MsgInvalidToken},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, MsgExpiredToken},
		{"invalid status", tasks.ErrInvalidStatus, http.StatusBadRequest, MsgInvalidStatus},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest, MsgInvalidEntity},
		{"unknown", errors.New("secret internals"), http.StatusInternalServerError, MsgInternal},
		{"nil", nil, http.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMessage, GetSafeErrorMessage(tt.err))
		})
	}
}
