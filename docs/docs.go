// Package docs registers the OpenAPI description served at /swagger when
// SWAGGER_ENABLED is set. Regenerate with:
//
//	swag init -g internal/http/router.go -o docs
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness and store status",
                "operationId": "health",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.HealthResponse"}}}
            }
        },
        "/api/calculate-bmi": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tracking"],
                "summary": "Calculate body mass index",
                "operationId": "calculateBMI",
                "parameters": [{"description": "Measurements", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BMIRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.BMIResponse"}},
                    "400": {"description": "Missing or non-positive measurement", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/save-workout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tracking"],
                "summary": "Record a workout",
                "operationId": "saveWorkout",
                "parameters": [{"description": "Workout", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.WorkoutRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/save-meditation": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tracking"],
                "summary": "Record a meditation session",
                "operationId": "saveMeditation",
                "parameters": [{"description": "Meditation session", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MeditationRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/reports-data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tracking"],
                "summary": "Recent records",
                "operationId": "reportsData",
                "parameters": [{"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "description": "Records per category", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ReportsResponse"}},
                    "500": {"description": "Database not available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/health-data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tracking"],
                "summary": "Latest health check-in",
                "operationId": "latestHealthData",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LatestHealthDataResponse"}},
                    "404": {"description": "No check-in yet", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tracking"],
                "summary": "Record a health check-in",
                "operationId": "saveHealthData",
                "parameters": [{"description": "Check-in", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.HealthDataRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthDataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/chatbot": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Ask the wellness assistant",
                "operationId": "chatbot",
                "parameters": [{"description": "Message and optional health context", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ChatbotRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ChatbotResponse"}},
                    "400": {"description": "Empty or oversized message", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Assistant not configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/assessments/{type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Questionnaire definition",
                "operationId": "getAssessment",
                "parameters": [{"enum": ["phq9", "gad7", "wellness"], "type": "string", "description": "Assessment type", "name": "type", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AssessmentResponse"}},
                    "404": {"description": "Unknown assessment", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/assessments/{type}/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Score a questionnaire",
                "operationId": "submitAssessment",
                "parameters": [
                    {"type": "string", "description": "Optional submitter id", "name": "X-User-ID", "in": "header"},
                    {"enum": ["phq9", "gad7", "wellness"], "type": "string", "description": "Assessment type", "name": "type", "in": "path", "required": true},
                    {"description": "Responses", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SubmitAssessmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SubmitAssessmentResponse"}},
                    "400": {"description": "Wrong number of responses or invalid value", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Unknown assessment", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/health-report": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Generate a health report",
                "operationId": "createHealthReport",
                "parameters": [{"description": "Measurements", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.HealthReportRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthReportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/health-report/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Load a stored health report",
                "operationId": "getHealthReport",
                "parameters": [{"type": "string", "description": "Report id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthReportResponse"}},
                    "404": {"description": "Report not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/export-json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Export"],
                "summary": "Download all records as JSON",
                "operationId": "exportJSON",
                "responses": {
                    "200": {"description": "health_report_YYYYMMDD_HHMMSS.json", "schema": {"type": "file"}},
                    "500": {"description": "Database not available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/export-yaml": {
            "get": {
                "produces": ["application/x-yaml"],
                "tags": ["Export"],
                "summary": "Download all records as YAML",
                "operationId": "exportYAML",
                "responses": {
                    "200": {"description": "health_report_YYYYMMDD_HHMMSS.yaml", "schema": {"type": "file"}},
                    "500": {"description": "Database not available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/export-pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["Export"],
                "summary": "Download a PDF report",
                "operationId": "exportPDF",
                "responses": {
                    "200": {"description": "health_report_YYYYMMDD_HHMMSS.pdf", "schema": {"type": "file"}},
                    "500": {"description": "Database not available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpapi.HealthResponse": {"type": "object", "properties": {"status": {"type": "string", "example": "ok"}, "store": {"type": "string", "example": "up"}, "backend": {"type": "string", "example": "mongo"}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"success": {"type": "boolean", "example": false}, "error": {"type": "string"}, "code": {"type": "string", "example": "bad_request"}, "request_id": {"type": "string"}}},
        "handlers.MessageResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string", "example": "Workout saved successfully"}}},
        "handlers.BMIRequest": {"type": "object", "required": ["height", "weight"], "properties": {"weight": {"type": "number", "example": 70}, "height": {"type": "number", "example": 175}, "unit": {"type": "string", "enum": ["metric", "imperial"]}}},
        "handlers.BMIResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "bmi": {"type": "number", "example": 22.86}, "category": {"type": "string", "example": "Normal weight"}, "color": {"type": "string", "example": "success"}}},
        "handlers.WorkoutRequest": {"type": "object", "properties": {"exercise_type": {"type": "string", "example": "Push-ups"}, "duration": {"type": "integer", "example": 15}}},
        "handlers.MeditationRequest": {"type": "object", "properties": {"meditation_type": {"type": "string", "example": "Breathing"}, "duration": {"type": "integer", "example": 10}}},
        "handlers.ReportsResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "bmi_records": {"type": "array", "items": {"type": "object"}}, "workout_records": {"type": "array", "items": {"type": "object"}}, "meditation_records": {"type": "array", "items": {"type": "object"}}}},
        "handlers.HealthDataRequest": {"type": "object", "required": ["height", "mental_score", "weight"], "properties": {"weight": {"type": "number"}, "height": {"type": "number"}, "mental_score": {"type": "integer", "example": 7}}},
        "handlers.HealthDataResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "bmi": {"type": "number"}, "category": {"type": "string"}, "mental_status": {"type": "string"}, "recommendations": {"type": "array", "items": {"type": "string"}}}},
        "handlers.LatestHealthDataResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "data": {"type": "object"}}},
        "handlers.ChatbotRequest": {"type": "object", "properties": {"message": {"type": "string"}, "session_id": {"type": "string"}, "age": {"type": "integer"}, "weight": {"type": "number"}, "height": {"type": "number"}, "activity_level": {"type": "string"}, "goals": {"type": "string"}, "bmi": {"type": "number"}, "mental_score": {"type": "integer"}}},
        "handlers.ChatbotResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "response": {"type": "string"}, "timestamp": {"type": "string", "example": "2024-05-01 09:00:00"}, "session_id": {"type": "string"}, "provider": {"type": "string"}, "fallback": {"type": "boolean"}}},
        "handlers.AssessmentResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "assessment": {"type": "object"}}},
        "handlers.SubmitAssessmentRequest": {"type": "object", "required": ["responses"], "properties": {"responses": {"type": "array", "items": {"type": "integer"}}}},
        "handlers.SubmitAssessmentResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "result_id": {"type": "string"}, "score": {"type": "integer"}, "max_score": {"type": "integer"}, "severity": {"type": "string"}, "advice": {"type": "string"}}},
        "handlers.HealthReportRequest": {"type": "object", "required": ["height", "weight"], "properties": {"height": {"type": "number"}, "weight": {"type": "number"}, "birthdate": {"type": "string", "example": "1994-01-10"}, "gender": {"type": "string"}, "activity_level": {"type": "string", "enum": ["sedentary", "light", "moderate", "active", "extra"]}, "unit": {"type": "string", "enum": ["metric", "imperial"]}}},
        "handlers.HealthReportResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "report": {"type": "object"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Holistiq API",
	Description:      "Wellness toolkit: BMI and activity tracking, assessments, health reports, exports and a chat assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
