// Package testutils provides testing utilities shared across packages.
//
// # Database Operations
//
// PostgreSQL-backed tests are integration tests. They run only when
// TASKS_TEST_DB_URL (or DATABASE_URL) is set and skip otherwise:
//
//	func TestSomething(t *testing.T) {
//	    testutils.SkipUnlessIntegration(t)
//	    db := testutils.GetTestDB(t)
//	    testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        userStore := postgres.NewPostgresUserStore(tx, nil)
//	        // changes are rolled back when fn returns
//	    })
//	}
package testutils
