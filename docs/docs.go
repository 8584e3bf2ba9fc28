// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/ecogarden-api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/weather/{city}": {
            "get": {
                "description": "Weather of the given city, or of the profile city of the authenticated user when no city is given",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Current weather of a city",
                "parameters": [
                    {"type": "string", "example": "Paris", "description": "City name", "name": "city", "in": "path"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Current conditions", "schema": {"$ref": "#/definitions/model.WeatherPayload"}},
                    "304": {"description": "Not modified"},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "No city found for this user", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Unable to retrieve weather", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/advice": {
            "get": {
                "produces": ["application/json"],
                "tags": ["advice"],
                "summary": "Advices of the current month",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AdviceResponse"}}},
                    "404": {"description": "No advice for this month", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/advice/{month}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["advice"],
                "summary": "Advices of a month",
                "parameters": [{"type": "integer", "description": "Month number, 1 to 12", "name": "month", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AdviceResponse"}}},
                    "400": {"description": "Month out of range", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "No advice for this month", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/advice/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advice"],
                "summary": "Create an advice",
                "parameters": [{"description": "Advice", "name": "advice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.AdviceRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Invalid data", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "403": {"description": "Administrator role required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/advice/update/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advice"],
                "summary": "Update an advice",
                "parameters": [
                    {"type": "integer", "description": "Advice id", "name": "id", "in": "path", "required": true},
                    {"description": "Advice", "name": "advice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.AdviceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Invalid data", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "403": {"description": "Administrator role required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Advice not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/advice/delete/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["advice"],
                "summary": "Delete an advice",
                "parameters": [{"type": "integer", "description": "Advice id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "403": {"description": "Administrator role required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Advice not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Register a user",
                "parameters": [{"description": "User", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Invalid data, email or pseudo already used", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/user/update/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "User", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Invalid data, email or pseudo already used", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "403": {"description": "Administrator role required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/user/delete/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "403": {"description": "Administrator role required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue a bearer token",
                "parameters": [{"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/home": {
            "get": {
                "produces": ["application/json"],
                "tags": ["home"],
                "summary": "Welcome message",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}}}
            }
        },
        "/health": {
            "get": {
                "description": "Report the database and weather cache status",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application health",
                "responses": {"200": {"description": "Status of every component", "schema": {"$ref": "#/definitions/model.HealthResponse"}}}
            }
        }
    },
    "definitions": {
        "model.WeatherPayload": {
            "type": "object",
            "properties": {
                "ville": {"type": "string", "example": "Paris"},
                "température": {"type": "string", "example": "15°C"},
                "description": {"type": "string", "example": "Nuageux"},
                "vent": {"type": "string", "example": "5 m/s"},
                "humidité": {"type": "string", "example": "80%"}
            }
        },
        "model.AdviceRequest": {
            "type": "object",
            "properties": {
                "advice": {"type": "string", "maxLength": 255, "minLength": 1, "example": "Paillez vos fraisiers"},
                "months": {"type": "array", "minItems": 1, "items": {"type": "integer", "maximum": 12, "minimum": 1}, "example": [3, 4]}
            }
        },
        "model.AdviceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "month": {"type": "array", "items": {"type": "integer"}},
                "advice": {"type": "string"}
            }
        },
        "model.CreateUserRequest": {
            "type": "object",
            "required": ["email", "password", "city", "pseudo"],
            "properties": {
                "email": {"type": "string", "example": "jane@ecogarden.fr"},
                "password": {"type": "string", "minLength": 6, "example": "secret1"},
                "city": {"type": "string", "example": "Lyon"},
                "pseudo": {"type": "string", "example": "jane"}
            }
        },
        "model.UpdateUserRequest": {
            "type": "object",
            "required": ["email", "password", "city", "pseudo", "role"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "city": {"type": "string"},
                "pseudo": {"type": "string"},
                "role": {"type": "array", "minItems": 1, "items": {"type": "string"}}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "model.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "cache": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EcoGarden API",
	Description:      "Monthly gardening advices, user accounts and cached weather lookups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
