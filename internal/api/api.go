// package api provides the HTTP API for the application
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/pkg/router"
)

const (
	apiTitle       = "Todo Lists API"
	apiDescription = "Todos grouped into lists, with cascading list deletion"
	apiVersion     = "1.0.0"
)

// TodoService defines the minimal interface needed by the API
type TodoService interface {
	// ListTodos returns all todos, or those of one list when listID is set
	ListTodos(ctx context.Context, listID string) ([]model.Todo, error)

	// GetTodo returns a todo by ID
	GetTodo(ctx context.Context, id string) (model.Todo, error)

	// CreateTodo creates a new todo
	CreateTodo(ctx context.Context, req model.CreateTodoRequest) (model.Todo, error)

	// UpdateTodo updates an existing todo
	UpdateTodo(ctx context.Context, id string, req model.UpdateTodoRequest) (model.Todo, error)

	// DeleteTodo deletes a todo
	DeleteTodo(ctx context.Context, id string) error
}

// ListService defines the list operations needed by the API
type ListService interface {
	ListLists(ctx context.Context) ([]model.TodoList, error)
	GetList(ctx context.Context, id string) (model.TodoList, error)
	CreateList(ctx context.Context, req model.CreateListRequest) (model.TodoList, error)
	UpdateList(ctx context.Context, id string, req model.UpdateListRequest) (model.TodoList, error)
	DeleteList(ctx context.Context, id string) error
}

// Stats reports collection sizes for the health endpoint
type Stats interface {
	Counts() (todos, lists int)
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Todos  int    `json:"todos" doc:"Number of stored todos"`
	Lists  int    `json:"lists" doc:"Number of stored lists"`
}

// Option configures the router built by NewRouter
type Option func(*options)

type options struct {
	logger  *slog.Logger
	origins []string
	stats   Stats
}

// WithLogger sets the logger used by the request logger and recoverer
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAllowedOrigins sets the origins allowed by the CORS middleware
func WithAllowedOrigins(origins ...string) Option {
	return func(o *options) {
		o.origins = origins
	}
}

// WithStats exposes collection sizes on the health endpoint
func WithStats(stats Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}

// API holds the components needed to register routes
type API struct {
	router      *router.DocRouter
	todoHandler *TodoHandler
	listHandler *ListHandler
	stats       Stats
}

// NewRouter creates a new router with all routes configured
func NewRouter(todoService TodoService, listService ListService, opts ...Option) *router.DocRouter {
	o := options{
		logger:  slog.Default(),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := router.NewDocRouter(apiTitle, apiDescription, apiVersion).
		WithTag("Todos", "Operations on todo items").
		WithTag("Lists", "Operations on todo lists").
		WithTag("Core", "Core API endpoints")

	r.Use(
		requestIDMiddleware,
		loggerMiddleware(o.logger),
		recovererMiddleware(o.logger),
		corsMiddleware(o.origins),
	)

	api := &API{
		router:      r,
		todoHandler: NewTodoHandler(todoService, o.logger),
		listHandler: NewListHandler(listService, o.logger),
		stats:       o.stats,
	}
	api.registerRoutes()

	return r
}

var (
	errSchema = &model.ErrorResponse{}

	badRequestExample = router.Example{
		ContentType: "application/json",
		Value:       `{"error":"invalid request format"}`,
	}
	listReferenceExample = router.Example{
		ContentType: "application/json",
		Value:       `{"error":"List not found"}`,
	}
)

// registerRoutes configures all API routes with documentation
func (api *API) registerRoutes() {
	api.router.Route(http.MethodGet, "/", homeHandler).
		WithName("Home").
		WithDescription("Home page").
		WithTags("Core").
		Register()

	api.router.Route(http.MethodGet, "/health", api.healthHandler).
		WithName("Health Check").
		WithDescription("API health check endpoint").
		WithResponse(&HealthResponse{}).
		WithTags("Core").
		Register()

	api.router.Route(http.MethodGet, "/openapi.json", api.openAPIHandler).
		WithName("OpenAPI Document").
		WithDescription("OpenAPI 3 document describing this API").
		WithTags("Core").
		Register()

	api.registerTodoRoutes()
	api.registerListRoutes()
}

func (api *API) registerTodoRoutes() {
	h := api.todoHandler

	api.router.Route(http.MethodGet, "/todos", h.ListTodos).
		WithName("List Todos").
		WithDescription("Get all todo items in insertion order, optionally restricted to one list").
		WithQueryParam("listId", "Only return todos belonging to this list").
		WithResponse([]model.Todo{}).
		WithErrorResponse(http.StatusInternalServerError, "Internal Server Error", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route(http.MethodPost, "/todos", h.CreateTodo).
		WithName("Create Todo").
		WithDescription("Create a new todo item, optionally inside an existing list").
		WithRequest(&model.CreateTodoRequest{}).
		WithResponse(&model.Todo{}).
		WithStatus(http.StatusCreated).
		WithErrorResponse(http.StatusBadRequest, "Malformed body or unknown list", errSchema,
			badRequestExample, listReferenceExample).
		WithErrorResponse(http.StatusUnprocessableEntity, "Unprocessable Entity", errSchema,
			router.Example{ContentType: "application/json", Value: `{"error":"title is required"}`}).
		WithTags("Todos").
		Register()

	api.router.Route(http.MethodGet, "/todos/{id}", h.GetTodo).
		WithName("Get Todo").
		WithDescription("Get a todo item by ID").
		WithResponse(&model.Todo{}).
		WithErrorResponse(http.StatusNotFound, "Not Found", nil).
		WithTags("Todos").
		Register()

	api.router.Route(http.MethodPut, "/todos/{id}", h.UpdateTodo).
		WithName("Update Todo").
		WithDescription("Apply a partial update to a todo item").
		WithRequest(&model.UpdateTodoRequest{}).
		WithResponse(&model.Todo{}).
		WithErrorResponse(http.StatusBadRequest, "Bad Request", errSchema, badRequestExample).
		WithErrorResponse(http.StatusNotFound, "Not Found", nil).
		WithErrorResponse(http.StatusUnprocessableEntity, "Unprocessable Entity", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route(http.MethodDelete, "/todos/{id}", h.DeleteTodo).
		WithName("Delete Todo").
		WithDescription("Delete a todo item").
		WithStatus(http.StatusNoContent).
		WithErrorResponse(http.StatusNotFound, "Not Found", nil).
		WithTags("Todos").
		Register()
}

func (api *API) registerListRoutes() {
	h := api.listHandler

	api.router.Route(http.MethodGet, "/lists", h.ListLists).
		WithName("List Lists").
		WithDescription("Get all todo lists in insertion order").
		WithResponse([]model.TodoList{}).
		WithErrorResponse(http.StatusInternalServerError, "Internal Server Error", errSchema).
		WithTags("Lists").
		Register()

	api.router.Route(http.MethodPost, "/lists", h.CreateList).
		WithName("Create List").
		WithDescription("Create a new todo list").
		WithRequest(&model.CreateListRequest{}).
		WithResponse(&model.TodoList{}).
		WithStatus(http.StatusCreated).
		WithErrorResponse(http.StatusBadRequest, "Bad Request", errSchema, badRequestExample).
		WithErrorResponse(http.StatusUnprocessableEntity, "Unprocessable Entity", errSchema,
			router.Example{ContentType: "application/json", Value: `{"error":"name is required"}`}).
		WithTags("Lists").
		Register()

	api.router.Route(http.MethodGet, "/lists/{id}", h.GetList).
		WithName("Get List").
		WithDescription("Get a todo list by ID").
		WithResponse(&model.TodoList{}).
		WithErrorResponse(http.StatusNotFound, "Not Found", nil).
		WithTags("Lists").
		Register()

	api.router.Route(http.MethodPut, "/lists/{id}", h.UpdateList).
		WithName("Update List").
		WithDescription("Apply a partial update to a todo list").
		WithRequest(&model.UpdateListRequest{}).
		WithResponse(&model.TodoList{}).
		WithErrorResponse(http.StatusBadRequest, "Bad Request", errSchema, badRequestExample).
		WithErrorResponse(http.StatusNotFound, "Not Found", nil).
		WithErrorResponse(http.StatusUnprocessableEntity, "Unprocessable Entity", errSchema).
		WithTags("Lists").
		Register()

	api.router.Route(http.MethodDelete, "/lists/{id}", h.DeleteList).
		WithName("Delete List").
		WithDescription("Delete a todo list together with every todo it owns").
		WithStatus(http.StatusNoContent).
		WithErrorResponse(http.StatusNotFound, "Not Found", nil).
		WithTags("Lists").
		Register()
}

// homeHandler handles the home page
func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Welcome to the Todo Lists API"))
}

// healthHandler handles the health check endpoint
func (api *API) healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if api.stats != nil {
		resp.Todos, resp.Lists = api.stats.Counts()
	}

	writeJSON(w, resp, http.StatusOK)
}

// openAPIHandler serves the document generated from the registered routes
func (api *API) openAPIHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.router.OpenAPI(), http.StatusOK)
}
