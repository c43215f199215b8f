// Package store defines the interfaces for account and message persistence,
// the sentinel errors they report, and the transaction helper services use
// to compose multiple operations atomically. Keeping the interfaces here
// lets business rules stay independent of the database technology behind
// them.
package store
