package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Support Search API",
        "description": "Search form contract for the support knowledge base, questions and discussion forums",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Search", "description": "Search form description and validation"}
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
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/v1/search/form": {
            "get": {
                "tags": ["Search"],
                "summary": "Search form description",
                "parameters": [
                    {"name": "lang", "in": "query", "type": "string", "enum": ["en", "es", "fr"]},
                    {"name": "Accept-Language", "in": "header", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SearchFormEnvelope"}},
                    "500": {"description": "Choices unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/search/criteria": {
            "get": {
                "tags": ["Search"],
                "summary": "Validate a search submission",
                "description": "Returns typed criteria, or VALIDATION_ERROR with messages keyed by field (__all__ for form-level errors).",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "w", "in": "query", "type": "integer", "enum": [1, 2, 3, 4]},
                    {"name": "a", "in": "query", "type": "integer"},
                    {"name": "topics", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "language", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "array", "items": {"type": "integer"}, "collectionFormat": "multi"},
                    {"name": "product", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "include_archived", "in": "query", "type": "boolean"},
                    {"name": "sortby_documents", "in": "query", "type": "string", "enum": ["relevance", "helpful"]},
                    {"name": "created", "in": "query", "type": "integer", "enum": [0, 1, 2]},
                    {"name": "created_date", "in": "query", "type": "string", "description": "MM/DD/YYYY"},
                    {"name": "updated", "in": "query", "type": "integer", "enum": [0, 1, 2]},
                    {"name": "updated_date", "in": "query", "type": "string", "description": "MM/DD/YYYY"},
                    {"name": "author", "in": "query", "type": "string"},
                    {"name": "sortby", "in": "query", "type": "integer", "enum": [0, 1, 2, 3]},
                    {"name": "thread_type", "in": "query", "type": "array", "items": {"type": "integer"}, "collectionFormat": "multi"},
                    {"name": "forum", "in": "query", "type": "array", "items": {"type": "integer"}, "collectionFormat": "multi"},
                    {"name": "asked_by", "in": "query", "type": "string"},
                    {"name": "answered_by", "in": "query", "type": "string"},
                    {"name": "sortby_questions", "in": "query", "type": "integer", "enum": [0, 1, 2, 3]},
                    {"name": "is_locked", "in": "query", "type": "integer", "enum": [0, 1, -1]},
                    {"name": "is_solved", "in": "query", "type": "integer", "enum": [0, 1, -1]},
                    {"name": "has_answers", "in": "query", "type": "integer", "enum": [0, 1, -1]},
                    {"name": "has_helpful", "in": "query", "type": "integer", "enum": [0, 1, -1]},
                    {"name": "num_voted", "in": "query", "type": "integer", "enum": [0, 1, 2]},
                    {"name": "num_votes", "in": "query", "type": "integer"},
                    {"name": "q_tags", "in": "query", "type": "string"},
                    {"name": "lang", "in": "query", "type": "string", "enum": ["en", "es", "fr"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SearchCriteriaEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/search/choices/refresh": {
            "post": {
                "tags": ["Search"],
                "summary": "Drop cached product, topic and forum choices",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Invalidated"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Cache unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ChoiceOption": {
            "type": "object",
            "properties": {
                "value": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "FormField": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "kind": {"type": "string"},
                "widget": {"type": "string"},
                "label": {"type": "string"},
                "required": {"type": "boolean"},
                "multiple": {"type": "boolean"},
                "empty_value": {},
                "attrs": {"type": "object", "additionalProperties": {"type": "string"}},
                "choices": {"type": "array", "items": {"$ref": "#/definitions/ChoiceOption"}}
            }
        },
        "SearchFormSchema": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/FormField"}}
            }
        },
        "SearchCriteria": {
            "type": "object",
            "properties": {
                "q": {"type": "string"},
                "w": {"type": "integer"},
                "a": {"type": "integer"},
                "topics": {"type": "array", "items": {"type": "string"}},
                "language": {"type": "string"},
                "category": {"type": "array", "items": {"type": "integer"}},
                "product": {"type": "array", "items": {"type": "string"}},
                "include_archived": {"type": "boolean"},
                "sortby_documents": {"type": "string"},
                "created": {"type": "integer"},
                "created_date": {"type": "integer", "description": "Unix seconds"},
                "updated": {"type": "integer"},
                "updated_date": {"type": "integer", "description": "Unix seconds"},
                "author": {"type": "string"},
                "sortby": {"type": "integer"},
                "thread_type": {"type": "array", "items": {"type": "integer"}},
                "forum": {"type": "array", "items": {"type": "integer"}},
                "asked_by": {"type": "string"},
                "answered_by": {"type": "string"},
                "sortby_questions": {"type": "integer"},
                "is_locked": {"type": "integer"},
                "is_solved": {"type": "integer"},
                "has_answers": {"type": "integer"},
                "has_helpful": {"type": "integer"},
                "num_voted": {"type": "integer"},
                "num_votes": {"type": "integer"},
                "q_tags": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "SearchFormEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/SearchFormSchema"},
                "meta": {"type": "object"}
            }
        },
        "SearchCriteriaEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/SearchCriteria"},
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
