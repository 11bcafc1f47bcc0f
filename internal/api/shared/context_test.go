package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), traceID)
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestWithUserID(t *testing.T) {
	t.Parallel()

	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	userID := uuid.New()
	id, ok := UserIDFromContext(WithUserID(context.Background(), userID))
	require.True(t, ok)
	assert.Equal(t, userID, id)
}
