// Package docs holds the generated Swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Receptionist Core API",
    "description": "Prompt generation and regeneration API for the AI phone receptionist",
    "contact": {
      "name": "API Support",
      "email": "support@frontdeskai.com"
    },
    "license": {
      "name": "MIT"
    },
    "version": "1.0"
  },
  "host": "localhost:8080",
  "basePath": "/",
  "paths": {
    "/health": {
      "get": {
        "produces": ["application/json"],
        "tags": ["Health"],
        "summary": "Service health check",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/businesses/{id}/prompt": {
      "get": {
        "produces": ["application/json"],
        "tags": ["Prompts"],
        "summary": "Get the active prompt artifact for a business",
        "parameters": [
          {"type": "string", "name": "id", "in": "path", "required": true}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    },
    "/businesses/{id}/prompt/versions": {
      "get": {
        "produces": ["application/json"],
        "tags": ["Prompts"],
        "summary": "List prompt versions for a business",
        "parameters": [
          {"type": "string", "name": "id", "in": "path", "required": true},
          {"type": "integer", "name": "limit", "in": "query"}
        ],
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/businesses/{id}/regenerate": {
      "post": {
        "produces": ["application/json"],
        "tags": ["Prompts"],
        "summary": "Regenerate the prompt for a business now",
        "parameters": [
          {"type": "string", "name": "id", "in": "path", "required": true}
        ],
        "responses": {
          "200": {"description": "OK"},
          "422": {"description": "Invalid business configuration"},
          "502": {"description": "Generation backend failed"}
        }
      }
    },
    "/businesses/{id}/regenerations": {
      "post": {
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "tags": ["Queue"],
        "summary": "Queue a prompt regeneration",
        "parameters": [
          {"type": "string", "name": "id", "in": "path", "required": true},
          {"name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EnqueueRequest"}}
        ],
        "responses": {
          "202": {"description": "Accepted"},
          "400": {"description": "Bad Request"}
        }
      }
    },
    "/queue/process": {
      "post": {
        "produces": ["application/json"],
        "tags": ["Queue"],
        "summary": "Drain the regeneration queue",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/queue/status": {
      "get": {
        "produces": ["application/json"],
        "tags": ["Queue"],
        "summary": "Queue depth",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/businesses/{id}/caller-context": {
      "get": {
        "produces": ["application/json"],
        "tags": ["Callers"],
        "summary": "Caller context for an incoming call",
        "parameters": [
          {"type": "string", "name": "id", "in": "path", "required": true},
          {"type": "string", "name": "phone", "in": "query", "required": true}
        ],
        "responses": {
          "200": {"description": "OK"},
          "400": {"description": "Bad Request"}
        }
      }
    },
    "/businesses/{id}/calls": {
      "post": {
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "tags": ["Callers"],
        "summary": "Record a completed call",
        "parameters": [
          {"type": "string", "name": "id", "in": "path", "required": true},
          {"name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RecordCallRequest"}}
        ],
        "responses": {
          "204": {"description": "No Content"},
          "400": {"description": "Bad Request"}
        }
      }
    }
  },
  "definitions": {
    "handlers.EnqueueRequest": {
      "type": "object",
      "properties": {
        "reason": {"type": "string", "example": "services_update"}
      }
    },
    "handlers.RecordCallRequest": {
      "type": "object",
      "properties": {
        "phone": {"type": "string", "example": "+15551234567"},
        "outcome": {"type": "string", "example": "appointment_booked"}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
