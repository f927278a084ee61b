// package router provides a router wrapper that captures documentation data
package router

import (
	"net/http"
	"strconv"
)

// Middleware wraps an http.Handler
type Middleware func(http.Handler) http.Handler

// RouteResponse represents a documented response for a specific HTTP status code
type RouteResponse struct {
	StatusCode  string    // HTTP status code (e.g., "200", "400")
	Description string    // Description of the response
	Schema      any       // Response schema/type (optional)
	Examples    []Example // Example responses (optional)
}

// Example represents an example response for documentation
type Example struct {
	ContentType string // Content type of the example (e.g., "application/json")
	Value       string // Example value as string
}

// QueryParam documents a query string parameter
type QueryParam struct {
	Name        string
	Description string
	Required    bool
}

// Tag groups operations in the generated document
type Tag struct {
	Name        string
	Description string
}

// RouteInfo stores documentation for a route
type RouteInfo struct {
	Method        string                   // HTTP method (GET, POST, etc.)
	Path          string                   // URL path, with {name} wildcards
	Name          string                   // Friendly name for the endpoint
	Description   string                   // Description of what the endpoint does
	Handler       http.Handler             // The actual handler
	RequestType   any                      // Example request type (for schema generation)
	ResponseType  any                      // Example success response type (for schema generation)
	SuccessStatus int                      // Status code of the success response
	Responses     map[string]RouteResponse // Additional responses keyed by status code
	QueryParams   []QueryParam             // Documented query parameters
	Tags          []string                 // Tags for grouping endpoints
}

// RouteConfig is a builder for route configuration
type RouteConfig struct {
	router *DocRouter
	info   RouteInfo
}

// DocRouter wraps http.ServeMux to add documentation capabilities.
// Middlewares apply to every route regardless of registration order.
type DocRouter struct {
	title       string
	description string
	version     string

	mux         *http.ServeMux
	handler     http.Handler
	middlewares []Middleware
	routes      []RouteInfo
	tags        []Tag
}

// NewDocRouter creates a new documented router
func NewDocRouter(title, description, version string) *DocRouter {
	mux := http.NewServeMux()
	return &DocRouter{
		title:       title,
		description: description,
		version:     version,
		mux:         mux,
		handler:     mux,
		routes:      []RouteInfo{},
	}
}

// WithTag declares a tag used to group operations
func (dr *DocRouter) WithTag(name, description string) *DocRouter {
	dr.tags = append(dr.tags, Tag{Name: name, Description: description})
	return dr
}

// Route starts a route configuration chain
func (dr *DocRouter) Route(method, path string, handler http.HandlerFunc) *RouteConfig {
	return &RouteConfig{
		router: dr,
		info: RouteInfo{
			Method:        method,
			Path:          path,
			Handler:       handler,
			SuccessStatus: http.StatusOK,
			Responses:     make(map[string]RouteResponse),
		},
	}
}

// WithName adds a name to the route
func (rc *RouteConfig) WithName(name string) *RouteConfig {
	rc.info.Name = name
	return rc
}

// WithDescription adds a description to the route
func (rc *RouteConfig) WithDescription(description string) *RouteConfig {
	rc.info.Description = description
	return rc
}

// WithRequest adds a request type to the route
func (rc *RouteConfig) WithRequest(requestType any) *RouteConfig {
	rc.info.RequestType = requestType
	return rc
}

// WithResponse adds a success response type to the route
func (rc *RouteConfig) WithResponse(responseType any) *RouteConfig {
	rc.info.ResponseType = responseType
	return rc
}

// WithStatus sets the success status code, 200 by default
func (rc *RouteConfig) WithStatus(statusCode int) *RouteConfig {
	rc.info.SuccessStatus = statusCode
	return rc
}

// WithQueryParam documents an optional query parameter
func (rc *RouteConfig) WithQueryParam(name, description string) *RouteConfig {
	rc.info.QueryParams = append(rc.info.QueryParams, QueryParam{Name: name, Description: description})
	return rc
}

// WithErrorResponse adds an error response to the route
func (rc *RouteConfig) WithErrorResponse(statusCode int, description string, schema any, examples ...Example) *RouteConfig {
	code := strconv.Itoa(statusCode)
	rc.info.Responses[code] = RouteResponse{
		StatusCode:  code,
		Description: description,
		Schema:      schema,
		Examples:    examples,
	}
	return rc
}

// WithTags adds tags to the route
func (rc *RouteConfig) WithTags(tags ...string) *RouteConfig {
	rc.info.Tags = tags
	return rc
}

// Register finalizes the route configuration and registers it with the router
func (rc *RouteConfig) Register() {
	// method-qualified ServeMux pattern, e.g. "GET /todos/{id}"
	pattern := rc.info.Method + " " + rc.info.Path
	if rc.info.Path == "/" {
		pattern += "{$}"
	}

	rc.router.mux.Handle(pattern, rc.info.Handler)
	rc.router.routes = append(rc.router.routes, rc.info)
}

// GetRoutes returns all documented routes
func (dr *DocRouter) GetRoutes() []RouteInfo {
	return dr.routes
}

// Use appends middlewares. The first middleware given runs outermost.
func (dr *DocRouter) Use(middleware ...Middleware) {
	dr.middlewares = append(dr.middlewares, middleware...)

	var handler http.Handler = dr.mux
	for i := len(dr.middlewares) - 1; i >= 0; i-- {
		handler = dr.middlewares[i](handler)
	}
	dr.handler = handler
}

// ServeHTTP makes DocRouter implement the http.Handler interface
func (dr *DocRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dr.handler.ServeHTTP(w, r)
}
