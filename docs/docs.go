// Package docs registers the OpenAPI description of the REST endpoints with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/referrals/customers/{customerId}/summary": {
            "get": {
                "description": "Program terms, credit stats and referrals (newest first) for a customer",
                "produces": ["application/json"],
                "tags": ["referrals"],
                "summary": "Referral summary",
                "parameters": [
                    {"type": "string", "description": "Customer ID", "name": "customerId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ReferralSummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperr.Response"}}
                }
            }
        },
        "/api/referrals/send": {
            "post": {
                "description": "Records a mock invitation for the customer owning the code and returns updated stats",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["referrals"],
                "summary": "Send referral code",
                "parameters": [
                    {"description": "Referral code", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.SendReferralCodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SendResultResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperr.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the service is healthy",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "httperr.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "object", "properties": {"message": {"type": "string"}}},
                "request_id": {"type": "string"},
                "detail": {}
            }
        },
        "request.SendReferralCodeRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string", "maxLength": 64}}
        },
        "response.ProgramResponse": {
            "type": "object",
            "properties": {
                "reward_amount": {"type": "number"},
                "friend_discount": {"type": "number"},
                "max_referrals": {"type": "integer"}
            }
        },
        "response.StatsResponse": {
            "type": "object",
            "properties": {
                "referred_count_year": {"type": "integer"},
                "earned_total": {"type": "number"},
                "redeemed_total": {"type": "number"},
                "available_credit": {"type": "number"}
            }
        },
        "response.FriendResponse": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}}
        },
        "response.ReferralResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "friend": {"$ref": "#/definitions/response.FriendResponse"},
                "status": {"type": "string", "enum": ["INVITED", "SIGNED_UP"]},
                "reward_earned": {"type": "number"},
                "created_at": {"type": "string"}
            }
        },
        "response.ReferralSummaryResponse": {
            "type": "object",
            "properties": {
                "customer_id": {"type": "string"},
                "code": {"type": "string"},
                "program": {"$ref": "#/definitions/response.ProgramResponse"},
                "stats": {"$ref": "#/definitions/response.StatsResponse"},
                "referrals": {"type": "array", "items": {"$ref": "#/definitions/response.ReferralResponse"}}
            }
        },
        "response.SendResultResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "timestamp": {"type": "string"},
                "stats": {"$ref": "#/definitions/response.StatsResponse"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "referral-credits",
	Description:      "Referral credits demo API. The GraphQL endpoint lives at /graphql.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
