// Package postgres provides the PostgreSQL implementations of the account
// and message storage interfaces defined in the internal/store package. It
// handles query execution, mapping between domain entities and table rows,
// and translating database errors into store sentinels.
package postgres
