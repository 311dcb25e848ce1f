// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles query execution, data mapping between domain entities and
// database records, and translation of driver errors into store errors.
//
// All stores operate against store.DBTX, so they work identically over a
// plain connection, a transaction, or the managed connection handle from
// the dbconn package.
package postgres
