// Package testdb provides database helpers for integration tests.
//
// Tests that need a real PostgreSQL instance call Get, which skips the test
// unless CHIRPER_TEST_DATABASE_URL is set. The target database is assumed to
// be disposable: every Get call re-creates the schema from scratch.
package testdb

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// EnvTestDatabaseURL is the environment variable holding the connection URL
// for the integration-test database.
const EnvTestDatabaseURL = "CHIRPER_TEST_DATABASE_URL"

// schema mirrors cmd/server/migrations. Integration tests rebuild it
// directly rather than running goose so a half-applied previous run can't
// poison the next one.
const schema = `
DROP TABLE IF EXISTS messages;
DROP TABLE IF EXISTS accounts;

CREATE TABLE accounts (
    account_id BIGSERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);

CREATE TABLE messages (
    message_id BIGSERIAL PRIMARY KEY,
    posted_by BIGINT NOT NULL REFERENCES accounts (account_id),
    message_text VARCHAR(255) NOT NULL,
    time_posted_epoch BIGINT
);
`

// Get returns a connection to the integration-test database with a fresh
// schema, or skips the test when no test database is configured.
// The connection is closed automatically when the test finishes.
func Get(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvTestDatabaseURL)
	if url == "" {
		t.Skipf("skipping: %s not set", EnvTestDatabaseURL)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to reset test schema: %v", err)
	}

	return db
}
