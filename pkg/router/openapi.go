package router

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const openAPIVersion = "3.0.0"

// OpenAPIGenerator generates OpenAPI documents from route info
type OpenAPIGenerator struct {
	Title       string
	Description string
	Version     string
	Routes      []RouteInfo
	Tags        []Tag

	schemas *schemaRegistry
}

// NewOpenAPIGenerator creates a new OpenAPI generator
func NewOpenAPIGenerator(title, description, version string, routes []RouteInfo, tags ...Tag) *OpenAPIGenerator {
	return &OpenAPIGenerator{
		Title:       title,
		Description: description,
		Version:     version,
		Routes:      routes,
		Tags:        tags,
		schemas:     newSchemaRegistry(),
	}
}

// OpenAPI builds the OpenAPI document for every registered route
func (dr *DocRouter) OpenAPI() map[string]any {
	return NewOpenAPIGenerator(dr.title, dr.description, dr.version, dr.routes, dr.tags...).Generate()
}

// Generate creates and returns an OpenAPI document
func (g *OpenAPIGenerator) Generate() map[string]any {
	// paths first: generating them fills the schema registry
	paths := g.generatePaths()

	doc := map[string]any{
		"openapi": openAPIVersion,
		"info": map[string]any{
			"title":       g.Title,
			"description": g.Description,
			"version":     g.Version,
		},
		"paths": paths,
		"components": map[string]any{
			"schemas": g.schemas.components(),
		},
	}

	if len(g.Tags) > 0 {
		tags := make([]any, 0, len(g.Tags))
		for _, tag := range g.Tags {
			tags = append(tags, map[string]any{
				"name":        tag.Name,
				"description": tag.Description,
			})
		}
		doc["tags"] = tags
	}

	return doc
}

// extractPathParams gets path parameters from a URL path
func extractPathParams(path string) []string {
	var params []string

	for _, part := range strings.Split(path, "/") {
		if len(part) > 2 && part[0] == '{' && part[len(part)-1] == '}' {
			name := strings.TrimSuffix(part[1:len(part)-1], "...")
			if name == "$" {
				continue
			}
			params = append(params, name)
		}
	}

	return params
}

func (g *OpenAPIGenerator) generateParameters(route RouteInfo) []any {
	var parameters []any

	for _, param := range extractPathParams(route.Path) {
		parameters = append(parameters, map[string]any{
			"name":        param,
			"in":          "path",
			"required":    true,
			"schema":      map[string]any{"type": "string"},
			"description": fmt.Sprintf("%s parameter", param),
		})
	}

	for _, param := range route.QueryParams {
		parameters = append(parameters, map[string]any{
			"name":        param.Name,
			"in":          "query",
			"required":    param.Required,
			"schema":      map[string]any{"type": "string"},
			"description": param.Description,
		})
	}

	return parameters
}

// operationID derives a stable identifier, e.g. "get_todos_id"
func operationID(method, path string) string {
	replacer := strings.NewReplacer("{", "", "}", "", "/", "_")
	id := strings.Trim(replacer.Replace(path), "_")
	if id == "" {
		id = "root"
	}
	return strings.ToLower(method) + "_" + id
}

// generatePaths creates the paths section of the document
func (g *OpenAPIGenerator) generatePaths() map[string]any {
	paths := map[string]any{}

	for _, route := range g.Routes {
		if _, exists := paths[route.Path]; !exists {
			paths[route.Path] = map[string]any{}
		}

		pathItem := paths[route.Path].(map[string]any)
		method := strings.ToLower(route.Method)

		operation := map[string]any{
			"summary":     route.Name,
			"description": route.Description,
			"operationId": operationID(route.Method, route.Path),
			"responses":   g.generateResponses(route),
		}

		if len(route.Tags) > 0 {
			operation["tags"] = route.Tags
		}

		if parameters := g.generateParameters(route); len(parameters) > 0 {
			operation["parameters"] = parameters
		}

		if route.RequestType != nil && (method == "post" || method == "put" || method == "patch") {
			operation["requestBody"] = g.generateRequestBody(route)
		}

		pathItem[method] = operation
	}

	return paths
}

// generateResponses creates response documentation
func (g *OpenAPIGenerator) generateResponses(route RouteInfo) map[string]any {
	responses := map[string]any{}

	for statusCode, routeResponse := range route.Responses {
		content := map[string]any{}

		if routeResponse.Schema != nil {
			content["schema"] = g.schemas.schemaOf(routeResponse.Schema)
		}

		if len(routeResponse.Examples) > 0 {
			examples := map[string]any{}
			for i, example := range routeResponse.Examples {
				examples["example"+strconv.Itoa(i+1)] = map[string]any{
					"value": example.Value,
				}
			}
			content["examples"] = examples
		}

		response := map[string]any{
			"description": routeResponse.Description,
		}
		if len(content) > 0 {
			response["content"] = map[string]any{
				"application/json": content,
			}
		}

		responses[statusCode] = response
	}

	status := strconv.Itoa(route.SuccessStatus)
	if _, exists := responses[status]; exists {
		return responses
	}

	success := map[string]any{
		"description": successDescription(route.SuccessStatus),
	}
	if route.ResponseType != nil && route.SuccessStatus != http.StatusNoContent {
		success["content"] = map[string]any{
			"application/json": map[string]any{
				"schema": g.schemas.schemaOf(route.ResponseType),
			},
		}
	}
	responses[status] = success

	return responses
}

func successDescription(status int) string {
	switch status {
	case http.StatusCreated:
		return "created"
	case http.StatusNoContent:
		return "no content"
	default:
		return "successful operation"
	}
}

// generateRequestBody creates request body documentation
func (g *OpenAPIGenerator) generateRequestBody(route RouteInfo) map[string]any {
	return map[string]any{
		"description": fmt.Sprintf("request body for %s", route.Name),
		"required":    true,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": g.schemas.schemaOf(route.RequestType),
			},
		},
	}
}
