// Package mocks provides centralized mock implementations for testing.
//
// Store mocks follow one pattern: every method has an optional function field
// (CreateFn, GetByIDFn, ...). When the field is nil the mock falls back to an
// in-memory implementation that honours the same uniqueness and ownership
// rules as the real stores, so most tests need no setup at all:
//
//	users := mocks.NewMockUserStore()
//	tasks := mocks.NewMockTaskStore()
//	tasks.DeleteFn = func(ctx context.Context, ownerID, id uuid.UUID) error {
//	    return errors.New("boom")
//	}
//
// Service mocks (MockAuthService, MockTaskService, ...) return their zero
// values unless the corresponding function field is set.
package mocks
