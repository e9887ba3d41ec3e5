// Package docs holds the swagger document served at /swagger/*any.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service identity",
                "responses": {
                    "200": {
                        "description": "Service is up",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/chat": {
            "post": {
                "description": "Classifies the question, asks the completion API and returns a plain-text answer. Failures are returned as friendly answers, never as error codes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Ask the rental support assistant",
                "parameters": [
                    {
                        "description": "Customer question",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.chatResp"}
                    },
                    "422": {
                        "description": "Body is not valid JSON",
                        "schema": {"$ref": "#/definitions/response.Resp"}
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {"$ref": "#/definitions/response.Resp"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether a completion API credential is configured",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "503": {
                        "description": "Dependency unavailable",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Can I pay with UPI?"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "answer": {"type": "string", "example": "Yes, UPI, wallets and cards are fully supported."}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Vehicle Rental Chatbot API",
	Description:      "Customer-support chatbot for a vehicle rental business, backed by Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
