package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

type versionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type endpointDoc struct {
	Path         string `json:"path"`
	Method       string `json:"method"`
	Description  string `json:"description"`
	AuthRequired bool   `json:"auth_required"`
	RateLimit    string `json:"rate_limit,omitempty"`
	Note         string `json:"note,omitempty"`
}

type endpointGroup struct {
	Group     string        `json:"group"`
	Endpoints []endpointDoc `json:"endpoints"`
}

type docsResponse struct {
	Title     string          `json:"title"`
	Version   string          `json:"version"`
	Endpoints []endpointGroup `json:"endpoints"`
}

// Health сообщает состояние сервиса и БД. Сам сервис считается живым
// и при недоступной БД: статус БД отдаётся отдельным полем.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	db := "connected"
	if err := h.svc.Ping(ctx); err != nil {
		db = "disconnected (" + err.Error() + ")"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		Database:    db,
		Environment: h.opts.Env,
	})
}

func (h *Handlers) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, versionResponse{
		Version:     h.opts.Version,
		Environment: h.opts.Env,
	})
}

// Docs отдаёт каталог эндпоинтов в JSON.
func (h *Handlers) Docs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, docsResponse{
		Title:     "Thought Diary API",
		Version:   h.opts.Version,
		Endpoints: catalogue,
	})
}

var catalogue = []endpointGroup{
	{
		Group: "System",
		Endpoints: []endpointDoc{
			{Path: "/health", Method: http.MethodGet, Description: "Health check endpoint"},
			{Path: "/version", Method: http.MethodGet, Description: "API version information"},
			{Path: "/docs", Method: http.MethodGet, Description: "API documentation"},
		},
	},
	{
		Group: "Authentication",
		Endpoints: []endpointDoc{
			{Path: "/auth/register", Method: http.MethodPost, Description: "Register new user", RateLimit: "3 per hour"},
			{Path: "/auth/login", Method: http.MethodPost, Description: "User login, returns JWT token", RateLimit: "5 per 15 minute"},
			{Path: "/auth/refresh", Method: http.MethodPost, Description: "Refresh JWT token", AuthRequired: true, Note: "Requires refresh token"},
			{Path: "/auth/logout", Method: http.MethodPost, Description: "Invalidate current token", AuthRequired: true},
			{Path: "/auth/me", Method: http.MethodGet, Description: "Get current user profile information", AuthRequired: true},
		},
	},
	{
		Group: "Thought Diaries",
		Endpoints: []endpointDoc{
			{Path: "/diaries", Method: http.MethodGet, Description: "List all thought diaries with pagination", AuthRequired: true},
			{Path: "/diaries", Method: http.MethodPost, Description: "Create a new thought diary", AuthRequired: true},
			{Path: "/diaries/{id}", Method: http.MethodGet, Description: "Get a specific thought diary", AuthRequired: true},
			{Path: "/diaries/{id}", Method: http.MethodPut, Description: "Update a specific thought diary", AuthRequired: true},
			{Path: "/diaries/{id}", Method: http.MethodDelete, Description: "Delete a specific thought diary", AuthRequired: true},
			{Path: "/diaries/stats", Method: http.MethodGet, Description: "Get statistics about user's thought diaries", AuthRequired: true},
		},
	},
}
