// Package swagger holds the OpenAPI description of the scan HTTP API.
// It follows the layout of `swag init -g cmd/serve.go -o docs/swagger` and
// must be kept in step with the handler annotations.
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
        "/decode": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Decodes a device barcode and, when the location parameter is present, a location barcode. Nothing is written.",
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Decode Barcodes",
                "parameters": [
                    {"type": "string", "description": "Device barcode", "name": "device", "in": "query", "required": true},
                    {"type": "string", "description": "Location barcode; an empty value is rejected", "name": "location", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Decoded scan", "schema": {"$ref": "#/definitions/reconcile.Scan"}},
                    "422": {"description": "Unrecognized barcode", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/endpoints/export": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Uploads the current location of every device as one JSON object to the export bucket.",
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Export Location Snapshot",
                "responses": {
                    "201": {"description": "Uploaded snapshot", "schema": {"$ref": "#/definitions/endpoints.ExportReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/endpoints/{barcode}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns the stored record of a device, including its user and comment annotations.",
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Get Device Record",
                "parameters": [
                    {"type": "string", "description": "Device barcode", "name": "barcode", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Stored record", "schema": {"$ref": "#/definitions/reconcile.Record"}},
                    "404": {"description": "Device not in inventory", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Invalid device barcode", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Store unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/schema": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Checks that the endpoints table carries every column the processor reads and writes.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Store Schema",
                "responses": {
                    "200": {"description": "Schema Report", "schema": {"$ref": "#/definitions/checks.SchemaReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/scans": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Runs one scan event through the processor. Omit location to remove the device from its location. The response carries the processor exit code.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Process Scan",
                "parameters": [
                    {"description": "Scan event", "name": "scan", "in": "body", "required": true, "schema": {"$ref": "#/definitions/endpoints.ScanRequest"}}
                ],
                "responses": {
                    "200": {"description": "Inserted, updated or cleared (exit 0)", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}},
                    "404": {"description": "Removal of an unknown device (exit 10)", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}},
                    "409": {"description": "Removal blocked by annotation (exit 3)", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}},
                    "422": {"description": "Unrecognized barcode (exit 4)", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}},
                    "500": {"description": "Commit failure (exit 2)", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}},
                    "503": {"description": "Store unavailable (exit 1)", "schema": {"$ref": "#/definitions/endpoints.ScanResponse"}}
                }
            }
        }
    },
    "definitions": {
        "barcode.Device": {
            "type": "object",
            "properties": {
                "barcode": {"type": "string"},
                "network_id": {"type": "string"},
                "prefix": {"type": "string"},
                "product": {"$ref": "#/definitions/barcode.Product"}
            }
        },
        "barcode.Location": {
            "type": "object",
            "properties": {
                "barcode": {"type": "string"},
                "kind": {"type": "string"},
                "location": {"type": "string"},
                "location_prefix": {"type": "string"},
                "read_date": {"type": "string"},
                "socket_form": {"type": "string"},
                "voltage": {"type": "string"}
            }
        },
        "barcode.Product": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "product_name": {"type": "string"}
            }
        },
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "driver": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "table": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        },
        "endpoints.ExportReport": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "count": {"type": "integer"},
                "object": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "endpoints.ScanRequest": {
            "type": "object",
            "properties": {
                "device": {"type": "string", "example": "T10123456789"},
                "location": {"type": "string", "example": "PN12340V5"}
            }
        },
        "endpoints.ScanResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "error": {"type": "string"},
                "exit_code": {"type": "integer"},
                "network_id": {"type": "string"},
                "outcome": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "reconcile.Record": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "location": {"type": "string"},
                "location_prefix": {"type": "string"},
                "network_id": {"type": "string"},
                "product_id": {"type": "string"},
                "product_name": {"type": "string"},
                "read_date": {"type": "string"},
                "socket_form": {"type": "string"},
                "user": {"type": "string"},
                "voltage": {"type": "string"}
            }
        },
        "reconcile.Scan": {
            "type": "object",
            "properties": {
                "device": {"$ref": "#/definitions/barcode.Device"},
                "location": {"$ref": "#/definitions/barcode.Location"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "autoscan API",
	Description:      "Records the location of scanned inventory devices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
