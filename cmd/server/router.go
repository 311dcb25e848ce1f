package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jstrand/kanban-api/internal/api"
	apiMiddleware "github.com/jstrand/kanban-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	boardHandler := api.NewBoardHandler(
		app.boardStore, app.columnStore, app.taskStore, app.txRunner)
	columnHandler := api.NewColumnHandler(app.boardStore, app.columnStore)
	taskHandler := api.NewTaskHandler(app.boardStore, app.columnStore, app.taskStore)
	healthHandler := api.NewHealthHandler(app.dbHealth)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	databaseMiddleware := apiMiddleware.NewDatabaseMiddleware(app.dbHealth)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public, but they still need storage)
		r.Group(func(r chi.Router) {
			r.Use(databaseMiddleware.Require)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
			r.Post("/auth/refresh", authHandler.RefreshToken)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(databaseMiddleware.Require)

			// Board endpoints
			r.Post("/boards", boardHandler.Create)
			r.Get("/boards", boardHandler.List)
			r.Get("/boards/{boardID}", boardHandler.Get)
			r.Put("/boards/{boardID}", boardHandler.Update)
			r.Delete("/boards/{boardID}", boardHandler.Delete)

			// Column endpoints
			r.Post("/boards/{boardID}/columns", columnHandler.Create)
			r.Get("/boards/{boardID}/columns", columnHandler.List)
			r.Put("/columns/{columnID}", columnHandler.Update)
			r.Delete("/columns/{columnID}", columnHandler.Delete)

			// Task endpoints
			r.Post("/columns/{columnID}/tasks", taskHandler.Create)
			r.Get("/columns/{columnID}/tasks", taskHandler.ListByColumn)
			r.Get("/boards/{boardID}/tasks", taskHandler.ListByBoard)
			r.Put("/tasks/{taskID}", taskHandler.Update)
			r.Delete("/tasks/{taskID}", taskHandler.Delete)
		})
	})

	// Health endpoints bypass the readiness gate: they must answer even
	// when the database is down.
	r.Get("/health", healthHandler.Check)
	r.Post("/health/reconnect", healthHandler.Reconnect)

	return r
}
