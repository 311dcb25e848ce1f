// Package store defines the persistence interfaces and shared error types
// used by the service layer. Concrete implementations live under
// internal/platform (e.g. the PostgreSQL implementation in
// internal/platform/postgres).
package store
