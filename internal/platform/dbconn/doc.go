// Package dbconn implements the database connection lifecycle manager.
//
// The Manager owns the single database session for the process. It
// deduplicates concurrent connection attempts so a burst of cold-start
// requests dials the database exactly once, retries transient failures
// with capped exponential backoff, reconciles its cached "connected" flag
// against the driver's live state on every use, and closes connections
// that sit idle past a configurable threshold. In serverless mode the
// idle closer is disabled entirely, since each invocation has its own
// short lifecycle.
//
// The Health type layers a liveness report and an idempotent reconnect
// operation on top of the Manager; HTTP middleware consults it before any
// request that touches storage.
package dbconn
