// Package api provides the HTTP handlers for the kanban API: user
// authentication, board/column/task CRUD, and the database health
// endpoints. Handlers translate internal errors into sanitized HTTP
// responses; internal error details never reach clients.
package api
