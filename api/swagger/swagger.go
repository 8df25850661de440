package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SnapTrack Attendance API",
        "description": "Authentication, class rosters and attendance tracking for teachers and students",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Authentication", "description": "Login and identity"},
        {"name": "Classes", "description": "Role-scoped class listings"},
        {"name": "Attendance", "description": "Per-class, per-date attendance ledger"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed payload"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing token"},
                    "403": {"description": "Invalid or expired token"}
                }
            }
        },
        "/classes/teacher": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes taught by the caller",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing token"},
                    "403": {"description": "Caller is not a teacher"}
                }
            }
        },
        "/classes/student": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes the caller is enrolled in",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing token"},
                    "403": {"description": "Caller is not a student"}
                }
            }
        },
        "/attendance": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Record attendance for a class and date",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Records replaced", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Session created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload or date"},
                    "401": {"description": "Missing token"},
                    "403": {"description": "Caller is not a teacher"},
                    "404": {"description": "Class not found or not authorized"}
                }
            }
        },
        "/attendance/{classId}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance sessions for a class",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing token"},
                    "403": {"description": "Not authorized to view this class"}
                }
            }
        },
        "/attendance/{classId}/export": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Download the class attendance sheet",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "produces": ["text/csv", "application/pdf"],
                "responses": {
                    "200": {"description": "Attendance sheet"},
                    "400": {"description": "Unsupported format"},
                    "401": {"description": "Missing token"},
                    "403": {"description": "Not authorized to view this class"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AttendanceRecord": {
            "type": "object",
            "required": ["studentId", "status"],
            "properties": {
                "studentId": {"type": "string"},
                "status": {"type": "string", "example": "present"}
            }
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "required": ["classId", "date", "records"],
            "properties": {
                "classId": {"type": "string"},
                "date": {"type": "string", "example": "2025-04-01"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/AttendanceRecord"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
