package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Research Hub API",
        "description": "CRUD backend for researcher profiles, research papers and topic statistics",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Researchers", "description": "Researcher profile management"},
        {"name": "Topics", "description": "Research topics and per-topic statistics"},
        {"name": "Papers", "description": "Research paper records with optional PDF attachments"},
        {"name": "Files", "description": "Stored attachment downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/researchers": {
            "get": {
                "tags": ["Researchers"],
                "summary": "List researchers",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string", "description": "Substring match over name, student ID, phone and email"}
                ],
                "responses": {
                    "200": {"description": "Array of researchers", "schema": {"type": "array", "items": {"$ref": "#/definitions/Researcher"}}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Researchers"],
                "summary": "Create researcher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateResearcher"}}
                ],
                "responses": {
                    "201": {"description": "Created researcher", "schema": {"$ref": "#/definitions/Researcher"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Duplicate student ID", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/researchers/{id}": {
            "get": {
                "tags": ["Researchers"],
                "summary": "Get researcher",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Researcher", "schema": {"$ref": "#/definitions/Researcher"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Researchers"],
                "summary": "Partially update researcher",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateResearcher"}}
                ],
                "responses": {
                    "200": {"description": "Updated researcher", "schema": {"$ref": "#/definitions/Researcher"}},
                    "400": {"description": "Empty or invalid patch", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Duplicate student ID", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Researchers"],
                "summary": "Delete researcher",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Confirmation message", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/topics": {
            "get": {
                "tags": ["Topics"],
                "summary": "List research topics",
                "responses": {
                    "200": {"description": "Array of topics", "schema": {"type": "array", "items": {"$ref": "#/definitions/ResearchTopic"}}}
                }
            }
        },
        "/api/statistics/topics": {
            "get": {
                "tags": ["Topics"],
                "summary": "Per-topic paper and distinct-researcher counts",
                "responses": {
                    "200": {"description": "Array of topic statistics", "schema": {"type": "array", "items": {"$ref": "#/definitions/TopicStats"}}}
                }
            }
        },
        "/api/papers": {
            "get": {
                "tags": ["Papers"],
                "summary": "List papers joined with topic and researcher names",
                "parameters": [
                    {"name": "topic_id", "in": "query", "type": "integer"},
                    {"name": "researcher_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Array of papers", "schema": {"type": "array", "items": {"$ref": "#/definitions/PaperDetail"}}}
                }
            },
            "post": {
                "tags": ["Papers"],
                "summary": "Create paper with optional PDF attachment",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "type": "string", "required": true},
                    {"name": "researcher_id", "in": "formData", "type": "integer", "required": true},
                    {"name": "topic_id", "in": "formData", "type": "integer", "required": true},
                    {"name": "publication_year", "in": "formData", "type": "integer"},
                    {"name": "journal_name", "in": "formData", "type": "string"},
                    {"name": "abstract", "in": "formData", "type": "string"},
                    {"name": "file", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created paper", "schema": {"$ref": "#/definitions/PaperDetail"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/papers/{id}": {
            "put": {
                "tags": ["Papers"],
                "summary": "Partially update paper",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePaper"}}
                ],
                "responses": {
                    "200": {"description": "Updated paper", "schema": {"$ref": "#/definitions/PaperDetail"}},
                    "400": {"description": "Empty or invalid patch", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Papers"],
                "summary": "Delete paper and its stored file",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Confirmation message", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/files/{key}": {
            "get": {
                "tags": ["Files"],
                "summary": "Download a stored file",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "key", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Researcher": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "full_name": {"type": "string"},
                "student_id": {"type": "string"},
                "phone_number": {"type": "string"},
                "email": {"type": "string"},
                "research_papers_count": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateResearcher": {
            "type": "object",
            "required": ["full_name", "student_id", "phone_number"],
            "properties": {
                "full_name": {"type": "string"},
                "student_id": {"type": "string"},
                "phone_number": {"type": "string"},
                "email": {"type": "string"},
                "research_papers_count": {"type": "integer", "minimum": 0}
            }
        },
        "UpdateResearcher": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "student_id": {"type": "string"},
                "phone_number": {"type": "string"},
                "email": {"type": "string"},
                "research_papers_count": {"type": "integer", "minimum": 0}
            }
        },
        "ResearchTopic": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "TopicStats": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "paper_count": {"type": "integer"},
                "researcher_count": {"type": "integer"}
            }
        },
        "PaperDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "researcher_id": {"type": "integer"},
                "topic_id": {"type": "integer"},
                "publication_year": {"type": "integer"},
                "journal_name": {"type": "string"},
                "abstract": {"type": "string"},
                "file_url": {"type": "string"},
                "file_name": {"type": "string"},
                "file_size": {"type": "integer"},
                "topic_name": {"type": "string"},
                "researcher_name": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "UpdatePaper": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "researcher_id": {"type": "integer"},
                "topic_id": {"type": "integer"},
                "publication_year": {"type": "integer"},
                "journal_name": {"type": "string"},
                "abstract": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
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
