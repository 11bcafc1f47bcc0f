package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dm-mensavi/task-management/internal/api/middleware"
	"github.com/dm-mensavi/task-management/internal/api/shared"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	buf, log := logger.NewTestLogger(t)

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	middleware.NewTraceMiddleware(log)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, traceID, 32)
	assert.Equal(t, traceID, w.Header().Get(middleware.TraceIDHeader))
	logger.AssertLogContains(t, buf, "inside handler")
	logger.AssertLogContains(t, buf, `"trace_id":"`+traceID+`"`)
}
