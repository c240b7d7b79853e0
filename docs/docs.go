// Package docs holds the OpenAPI document served at /docs. It follows the
// swag annotation layout and must be updated with the annotations in
// cmd/dashboard and internal/api/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "OctoFit"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns service name, version, status and the remote API it reads from.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API root info",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns basic health status and timestamp.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health/views": {
            "get": {
                "description": "Returns the phase of each collection view.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "View health",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/leaderboard/metric": {
            "put": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Set leaderboard metric",
                "parameters": [
                    {
                        "enum": ["total_points", "activity_count", "total_duration", "total_calories"],
                        "type": "string",
                        "description": "Metric",
                        "name": "key",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/leaderboard/top": {
            "get": {
                "description": "Returns up to three leading entries under the selected metric.",
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Top performers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/resources": {
            "get": {
                "description": "Returns the collection resources with their remote endpoints.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "List resources",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.resourceInfo"}}}
                }
            }
        },
        "/views/{resource}": {
            "get": {
                "description": "Returns phase, message, rows (ranked for the leaderboard) and the detail selection. Supports If-None-Match.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Get view state",
                "parameters": [{"$ref": "#/parameters/resource"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "304": {"description": "Not Modified"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/views/{resource}/refresh": {
            "post": {
                "description": "Re-enters Loading and issues a new fetch. With wait=true the response is sent once the fetch settles, or with 202 after WAIT_TIMEOUT.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Refresh view",
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "boolean", "description": "Wait for the fetch to settle", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/views/{resource}/retry": {
            "post": {
                "description": "Only valid while the view is failed. Restarts the fetch from scratch.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Retry view",
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "boolean", "description": "Wait for the fetch to settle", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/views/{resource}/selection": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Clear selection",
                "parameters": [{"$ref": "#/parameters/resource"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/views/{resource}/selection/{index}": {
            "put": {
                "description": "Selects the record at the given display index, replacing any previous selection.",
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Select record",
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "integer", "description": "Row index in display order", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "resource": {
            "enum": ["activities", "leaderboard", "teams", "users", "workouts"],
            "type": "string",
            "description": "Collection",
            "name": "resource",
            "in": "path",
            "required": true
        }
    },
    "definitions": {
        "handler.resourceInfo": {
            "type": "object",
            "properties": {
                "endpoint": {"type": "string"},
                "name": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "detail": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        },
        "view.Row": {
            "type": "object",
            "properties": {
                "display": {"type": "object"},
                "index": {"type": "integer"},
                "medal": {"type": "string"},
                "rank": {"type": "integer"},
                "record": {"type": "object", "additionalProperties": true},
                "tier": {"type": "string", "enum": ["top1", "top2", "top3", "other"]}
            }
        },
        "view.Snapshot": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "detail_requested": {"type": "boolean"},
                "endpoint": {"type": "string"},
                "message": {"type": "string"},
                "metric": {"type": "string"},
                "phase": {"type": "string", "enum": ["loading", "ready", "failed"]},
                "resource": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/view.Row"}},
                "selection": {"$ref": "#/definitions/view.Row"},
                "top_performers": {"type": "array", "items": {"$ref": "#/definitions/view.Row"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "OctoFit Dashboard API",
	Description:      "Read-only views over the OctoFit fitness API: activities, leaderboard, teams, users and workouts, each with its own load lifecycle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
