package http

import (
	"net/http"

	"budget-backend/internal/handlers"
	"budget-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Project *handlers.ProjectHandler
	Job     *handlers.JobHandler
	Item    *handlers.ItemHandler
	PlEntry *handlers.PlEntryHandler
	Account *handlers.AccountHandler
	Report  *handlers.ReportHandler
	Health  *handlers.HealthHandler
}

// NewRouter wires all routes. Everything under /api except auth requires a
// valid bearer token.
func NewRouter(h *Handlers, authMW *middleware.AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/signup", h.Auth.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMW.Handle)

	api.HandleFunc("/projects", h.Project.Create).Methods(http.MethodPost)
	api.HandleFunc("/projects", h.Project.List).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project_id}", h.Project.Get).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project_id}", h.Project.Update).Methods(http.MethodPut)
	api.HandleFunc("/projects/{project_id}", h.Project.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/projects/{project_id}/jobs", h.Job.Create).Methods(http.MethodPost)
	api.HandleFunc("/projects/{project_id}/jobs", h.Job.List).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project_id}/jobs/{job_id}", h.Job.Get).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project_id}/jobs/{job_id}", h.Job.Update).Methods(http.MethodPut)
	api.HandleFunc("/projects/{project_id}/jobs/{job_id}", h.Job.Delete).Methods(http.MethodDelete)

	items := api.PathPrefix("/projects/{project_id}/jobs/{job_id}/items").Subrouter()
	items.HandleFunc("", h.Item.Create).Methods(http.MethodPost)
	items.HandleFunc("", h.Item.List).Methods(http.MethodGet)
	items.HandleFunc("/{item_id}", h.Item.Get).Methods(http.MethodGet)
	items.HandleFunc("/{item_id}", h.Item.Update).Methods(http.MethodPut)
	items.HandleFunc("/{item_id}/entries", h.Item.UpdateEntries).Methods(http.MethodPut)
	items.HandleFunc("/{item_id}", h.Item.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/projects/{project_id}/pl-entries", h.PlEntry.List).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project_id}/pl-entries", h.PlEntry.BulkUpsert).Methods(http.MethodPost)

	api.HandleFunc("/projects/{project_id}/jobs/{job_id}/reports/budget.csv", h.Report.BudgetCSV).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project_id}/jobs/{job_id}/reports/budget.pdf", h.Report.BudgetPDF).Methods(http.MethodGet)

	api.HandleFunc("/accounts", h.Account.ListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/item-types", h.Account.ListItemTypes).Methods(http.MethodGet)
	api.HandleFunc("/account-items", h.Account.ListAccountItems).Methods(http.MethodGet)

	return r
}
