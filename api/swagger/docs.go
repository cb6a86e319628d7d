// Package swagger registers the OpenAPI document served at /swagger.
package swagger

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
        "/api/setup": {
            "post": {
                "description": "Creates the company, the primary admin slot and the theme. Can only run once.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Complete setup",
                "parameters": [{"description": "Setup Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SetupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Setup already completed", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "patch": {
                "description": "Applies the supplied fields only. Colour changes re-derive and broadcast the theme.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update settings",
                "parameters": [{"description": "Settings Patch", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SettingsPatch"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Response"}},
                    "428": {"description": "Setup not completed", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/theme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get theme",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "List currencies",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/user-slots": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user-slots"],
                "summary": "Add user slot",
                "parameters": [{"description": "User Slot Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UserSlotRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Slot capacity reached", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/user-slots/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user-slots"],
                "summary": "Update user slot",
                "parameters": [
                    {"type": "string", "description": "Slot ID", "name": "id", "in": "path", "required": true},
                    {"description": "User Slot Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UserSlotRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "description": "The primary admin slot and the last remaining slot cannot be deleted",
                "produces": ["application/json"],
                "tags": ["user-slots"],
                "summary": "Delete user slot",
                "parameters": [{"type": "string", "description": "Slot ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List documents",
                "parameters": [
                    {"type": "string", "description": "Invoice or Quotation", "name": "type", "in": "query"},
                    {"type": "string", "description": "Draft, Sent, Paid, Overdue or Void", "name": "status", "in": "query"},
                    {"type": "string", "description": "Search by number or client name", "name": "search", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Number of items per page (default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "description": "Generates the number when omitted and always derives the totals from the line items",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Create document",
                "parameters": [{"description": "Document Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.DocumentRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/documents/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Get document",
                "parameters": [{"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Update document",
                "parameters": [
                    {"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true},
                    {"description": "Document Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.DocumentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Delete document",
                "parameters": [{"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/document-numbers/next": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Next document number",
                "parameters": [{"type": "string", "description": "Invoice or Quotation", "name": "type", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List customers",
                "parameters": [{"type": "string", "description": "Search by name, email or phone", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Create customer",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/inventory": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "List inventory items",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Create inventory item",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/inventory/{id}/adjust-stock": {
            "post": {
                "description": "Adds quantityChange (negative to remove) to the stock on hand, never going below zero",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Adjust stock",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/payments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "List payments",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Create payment",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/statistics": {
            "get": {
                "description": "Sums documents and payments in the default currency. Dates are inclusive and formatted YYYY-MM-DD.",
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Get dashboard summary",
                "parameters": [
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "End date (YYYY-MM-DD)", "name": "end_date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/exports/documents.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["exports"],
                "summary": "Export documents",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/api/exports/payments.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["exports"],
                "summary": "Export payments",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/api/exports/inventory.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["exports"],
                "summary": "Export inventory",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "status_code": {"type": "integer"}
            }
        },
        "service.SetupRequest": {
            "type": "object",
            "required": ["companyName", "currency"],
            "properties": {
                "companyEmail": {"type": "string"},
                "companyName": {"type": "string"},
                "currency": {"type": "string"},
                "primaryColor": {"type": "string"},
                "secondaryColor": {"type": "string"}
            }
        },
        "service.SettingsPatch": {
            "type": "object",
            "properties": {
                "clearSecondaryTaxRate": {"type": "boolean"},
                "defaultCurrency": {"type": "string"},
                "defaultTaxRate": {"type": "number"},
                "maxUserSlots": {"type": "integer"},
                "primaryColor": {"type": "string"},
                "secondaryColor": {"type": "string"},
                "secondaryTaxRate": {"type": "number"},
                "selectedPdfTemplate": {"type": "string"}
            }
        },
        "service.UserSlotRequest": {
            "type": "object",
            "required": ["name", "role"],
            "properties": {
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "service.DocumentRequest": {
            "type": "object",
            "required": ["docType"],
            "properties": {
                "customerId": {"type": "string"},
                "docNumber": {"type": "string"},
                "docType": {"type": "string", "enum": ["Invoice", "Quotation"]},
                "dueDate": {"type": "string"},
                "issueDate": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/service.LineItemRequest"}},
                "notes": {"type": "string"},
                "currency": {"type": "string"},
                "status": {"type": "string", "enum": ["Draft", "Sent", "Paid", "Overdue", "Void"]},
                "taxRate": {"type": "number"}
            }
        },
        "service.LineItemRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "inventoryItemId": {"type": "string"},
                "quantity": {"type": "number"},
                "unitPrice": {"type": "number"}
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
	Title:            "CostR API",
	Description:      "Invoicing, quotations, customers, inventory and payments for a single business.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
