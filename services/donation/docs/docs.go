// Package docs registers the Swagger document for the donation service.
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
        "/donations/types": {
            "get": {
                "tags": ["donations"],
                "summary": "List donation types",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.DonationType"}}}
                }
            }
        },
        "/donations": {
            "post": {
                "tags": ["donations"],
                "summary": "Submit a donation",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.CreateDonationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreateDonationResponse"}},
                    "400": {"description": "Bad Request"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/donations/{id}": {
            "get": {
                "tags": ["donations"],
                "summary": "Get a donation",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.Donation"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/payment/qr": {
            "get": {
                "tags": ["payment"],
                "summary": "Get transfer QR info",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "donationId", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vietqr.PaymentInfo"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/goals": {
            "get": {
                "tags": ["goals"],
                "summary": "List active goals",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.GoalProgress"}}}
                }
            }
        },
        "/activities": {
            "get": {
                "tags": ["activities"],
                "summary": "Recent activity",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.Activity"}}}
                }
            }
        },
        "/admin/donations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List donations",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.DonationPage"}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/admin/donations/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Approve a donation",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/admin/donations/{id}/reject": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Reject a donation",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/http.RejectDonationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/admin/goals": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Create a goal",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.CreateGoalRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.Goal"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/admin/transfers/match": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Match a transfer memo",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.MatchTransferRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usecase.TransferMatch"}},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    },
    "definitions": {
        "entity.DonationType": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "suggested_amount": {"type": "string"},
                "icon": {"type": "string"},
                "is_active": {"type": "boolean"},
                "display_order": {"type": "integer"}
            }
        },
        "entity.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "donation_id": {"type": "string"},
                "provider": {"type": "string"},
                "amount": {"type": "string"},
                "status": {"type": "string"},
                "ipn_verified": {"type": "boolean"},
                "metadata": {"type": "object"}
            }
        },
        "entity.Donation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "amount": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "COMPLETED", "FAILED"]},
                "is_anonymous": {"type": "boolean"},
                "donor_name": {"type": "string"},
                "donor_email": {"type": "string"},
                "donor_phone": {"type": "string"},
                "type_id": {"type": "string"},
                "goal_id": {"type": "string"},
                "type": {"$ref": "#/definitions/entity.DonationType"},
                "transaction": {"$ref": "#/definitions/entity.Transaction"},
                "created_at": {"type": "string"}
            }
        },
        "entity.DonationPage": {
            "type": "object",
            "properties": {
                "donations": {"type": "array", "items": {"$ref": "#/definitions/entity.Donation"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "entity.Milestone": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "goal_id": {"type": "string"},
                "amount": {"type": "string"},
                "description": {"type": "string"},
                "achieved": {"type": "boolean"}
            }
        },
        "entity.Goal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "target_amount": {"type": "string"},
                "status": {"type": "string"},
                "deadline": {"type": "string"},
                "display_order": {"type": "integer"},
                "milestones": {"type": "array", "items": {"$ref": "#/definitions/entity.Milestone"}}
            }
        },
        "entity.GoalProgress": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "target_amount": {"type": "string"},
                "deadline": {"type": "string"},
                "milestones": {"type": "array", "items": {"$ref": "#/definitions/entity.Milestone"}},
                "current_amount": {"type": "string"},
                "progress_percent": {"type": "integer"},
                "achieved_milestones": {"type": "integer"},
                "total_milestones": {"type": "integer"},
                "days_remaining": {"type": "integer"}
            }
        },
        "entity.Activity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["DONATION", "GOAL_CREATED"]},
                "content": {"type": "string"},
                "metadata": {"type": "object"},
                "created_at": {"type": "string"}
            }
        },
        "http.CreateDonationRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "message": {"type": "string"},
                "is_anonymous": {"type": "boolean"},
                "donor_name": {"type": "string"},
                "donor_email": {"type": "string"},
                "donor_phone": {"type": "string"},
                "type_id": {"type": "string"},
                "goal_id": {"type": "string"}
            }
        },
        "http.CreateDonationResponse": {
            "type": "object",
            "properties": {
                "donation_id": {"type": "string"},
                "status": {"type": "string"},
                "redirect_url": {"type": "string"}
            }
        },
        "http.CreateGoalRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "target_amount": {"type": "number"},
                "deadline": {"type": "string"},
                "display_order": {"type": "integer"},
                "milestones": {"type": "array", "items": {"$ref": "#/definitions/http.MilestoneRequest"}}
            }
        },
        "http.MilestoneRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "description": {"type": "string"}
            }
        },
        "http.RejectDonationRequest": {
            "type": "object",
            "properties": {"reason": {"type": "string"}}
        },
        "http.MatchTransferRequest": {
            "type": "object",
            "required": ["memo"],
            "properties": {"memo": {"type": "string"}}
        },
        "usecase.TransferMatch": {
            "type": "object",
            "properties": {
                "prefix": {"type": "string"},
                "donations": {"type": "array", "items": {"$ref": "#/definitions/entity.Donation"}}
            }
        },
        "vietqr.BankInfo": {
            "type": "object",
            "properties": {
                "bank_code": {"type": "string"},
                "account_no": {"type": "string"},
                "account_name": {"type": "string"},
                "amount": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "vietqr.PaymentInfo": {
            "type": "object",
            "properties": {
                "qr_url": {"type": "string"},
                "bank_info": {"$ref": "#/definitions/vietqr.BankInfo"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Donation Service API",
	Description:      "Donation catalog, pledges, transfer QR codes, goals, activity feed and admin reconciliation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
