// Package docs holds the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/api/budgets": {
            "get": {
                "description": "List the budgets of one month ordered by category",
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "List budgets",
                "parameters": [
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query", "required": true},
                    {"type": "integer", "description": "Year (2000-2100)", "name": "year", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BudgetResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Upsert the budget of a category for one month",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Create or update a budget",
                "parameters": [
                    {"description": "Budget details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SetBudgetRequest"}}
                ],
                "responses": {
                    "200": {"description": "Budget updated", "schema": {"$ref": "#/definitions/dto.BudgetResponse"}},
                    "201": {"description": "Budget created", "schema": {"$ref": "#/definitions/dto.BudgetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/budgets/insights": {
            "get": {
                "description": "Compare the budgets of a month with its signed spending",
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Budget insights",
                "parameters": [
                    {"type": "integer", "description": "Month (1-12), defaults to the current month", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Year (2000-2100), defaults to the current year", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BudgetInsightsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "description": "Monthly series of the current year, category breakdown and recent transactions",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Spending overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OverviewResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/transactions": {
            "get": {
                "description": "List transactions newest first, optionally limited to one month",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "description": "Month (1-12); applied only together with year", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Year (2000-2100); applied only together with month", "name": "year", "in": "query"},
                    {"enum": ["id", "date", "amount", "description", "category"], "type": "string", "description": "Sort field", "name": "sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort direction", "name": "direction", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Record a transaction. Cached transaction lists are not invalidated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [
                    {"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controller.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "cache": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.BudgetComparisonResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "label": {"type": "string"},
                "budget": {"type": "number"},
                "actual": {"type": "number"},
                "difference": {"type": "number"},
                "over_budget": {"type": "boolean"}
            }
        },
        "dto.BudgetInsightsResponse": {
            "type": "object",
            "properties": {
                "month": {"type": "integer"},
                "year": {"type": "integer"},
                "comparisons": {"type": "array", "items": {"$ref": "#/definitions/dto.BudgetComparisonResponse"}},
                "top_spending_category": {"$ref": "#/definitions/dto.BudgetComparisonResponse"},
                "over_budget": {"type": "array", "items": {"$ref": "#/definitions/dto.BudgetComparisonResponse"}}
            }
        },
        "dto.BudgetResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category": {"type": "string", "enum": ["FOOD", "RENT", "TRAVEL", "OTHER"]},
                "amount": {"type": "number"},
                "month": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "dto.CreateTransactionRequest": {
            "type": "object",
            "required": ["amount", "category", "date", "description"],
            "properties": {
                "amount": {"type": "number"},
                "date": {"type": "string", "example": "2024-03-18"},
                "description": {"type": "string", "maxLength": 255},
                "category": {"type": "string", "enum": ["FOOD", "RENT", "TRAVEL", "OTHER"]}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "dto.MonthlyExpenseResponse": {
            "type": "object",
            "properties": {
                "month": {"type": "string"},
                "amount": {"type": "number"}
            }
        },
        "dto.CategoryTotalResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "label": {"type": "string"},
                "amount": {"type": "number"}
            }
        },
        "dto.OverviewResponse": {
            "type": "object",
            "properties": {
                "monthly_expenses": {"type": "array", "items": {"$ref": "#/definitions/dto.MonthlyExpenseResponse"}},
                "category_breakdown": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryTotalResponse"}},
                "current_month_total": {"type": "number"},
                "transaction_count": {"type": "integer"},
                "category_count": {"type": "integer"},
                "recent_transactions": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}}
            }
        },
        "dto.SetBudgetRequest": {
            "type": "object",
            "required": ["amount", "category", "month", "year"],
            "properties": {
                "category": {"type": "string", "enum": ["FOOD", "RENT", "TRAVEL", "OTHER"]},
                "amount": {"type": "number"},
                "month": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "amount": {"type": "number"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Budget Tracker API",
	Description:      "Personal budgets and transactions with cached read paths.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
