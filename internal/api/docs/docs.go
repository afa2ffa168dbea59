// Package docs holds the Swagger document for the HTTP API and the routes
// that serve it. It is only mounted in development.
package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

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
        "/weatherforecast": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Five synthetic daily forecasts starting tomorrow",
                "operationId": "GetWeatherForecast",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/handlers.ForecastResponse"}
                        }
                    }
                }
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "List every stored pet",
                "operationId": "GetPets",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/handlers.PetResponse"}
                        }
                    },
                    "500": {
                        "description": "Storage failure",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["ops"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "handlers.ForecastResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date", "example": "2026-10-20"},
                "temperatureC": {"type": "integer", "example": 21},
                "temperatureF": {"type": "integer", "example": 70},
                "summary": {"type": "string", "x-nullable": true, "example": "Mild"}
            }
        },
        "handlers.PetResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Rex"},
                "dateOfBirth": {"type": "string", "format": "date-time", "example": "2019-05-04T10:30:00+03:00"}
            }
        },
        "handlers.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/handlers.Error"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "v1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pets Service API",
	Description:      "Synthetic weather forecasts and the stored pet list.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Register mounts GET /openapi/v1.json and the Swagger UI under /swagger/.
func Register(r chi.Router) {
	r.Get("/openapi/v1.json", serveDocument)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func serveDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render api document")
		http.Error(w, "failed to render api document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
