// Package docs holds the Swagger document served under /swagger.
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
	"consumes": [
		"application/json"
	],
	"produces": [
		"application/json"
	],
	"paths": {
		"/identities": {
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Register a client or contact",
				"operationId": "CreateIdentity",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateIdentityRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreatedResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/pricings": {
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Register a pricing",
				"operationId": "CreatePricing",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreatePricingRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreatedResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/pricing-geometries": {
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Add a feature to a pricing layer",
				"operationId": "AddPricingGeometry",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AddPricingGeometryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreatedResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/products": {
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Register a product",
				"operationId": "CreateProduct",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateProductRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreatedResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Open a draft order",
				"operationId": "CreateOrder",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateOrderRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreatedResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}": {
			"get": {
				"tags": [
					"orders"
				],
				"summary": "Read an order",
				"operationId": "GetOrder",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/OrderResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"patch": {
				"tags": [
					"orders"
				],
				"summary": "Edit a draft order",
				"operationId": "UpdateOrder",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateOrderRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/clients/{clientId}/last-draft": {
			"get": {
				"tags": [
					"orders"
				],
				"summary": "Newest draft of a client",
				"operationId": "GetLastDraft",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "clientId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/OrderResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/items": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Add a product to a draft",
				"operationId": "AddOrderItem",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AddOrderItemRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreatedResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/items/{itemId}": {
			"delete": {
				"tags": [
					"orders"
				],
				"summary": "Remove an item from a draft",
				"operationId": "RemoveOrderItem",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "itemId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/items/{itemId}/format": {
			"put": {
				"tags": [
					"orders"
				],
				"summary": "Choose the delivery format",
				"operationId": "SetItemFormat",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "itemId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SetItemFormatRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/items/{itemId}/quote": {
			"put": {
				"tags": [
					"quotes"
				],
				"summary": "Price an item by hand",
				"operationId": "QuoteItem",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "itemId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/QuoteItemRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/confirm": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Confirm a draft or an accepted quote",
				"operationId": "ConfirmOrder",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/quote/complete": {
			"post": {
				"tags": [
					"quotes"
				],
				"summary": "Close the quote of an order",
				"operationId": "CompleteQuote",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{orderId}/downloaded": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Record a download of the delivery",
				"operationId": "MarkOrderDownloaded",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/validations/{token}/approve": {
			"post": {
				"tags": [
					"validations"
				],
				"summary": "Approve an item",
				"operationId": "ApproveValidation",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "token",
						"in": "path",
						"required": true,
						"description": "validation token sent to the validator"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/validations/{token}/refuse": {
			"post": {
				"tags": [
					"validations"
				],
				"summary": "Refuse an item",
				"operationId": "RefuseValidation",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "token",
						"in": "path",
						"required": true,
						"description": "validation token sent to the validator"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/providers/{providerId}/extract/fetch": {
			"post": {
				"tags": [
					"extract"
				],
				"summary": "Take the pending items of a provider",
				"operationId": "FetchExtraction",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "providerId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/ExtractJobResponse"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/providers/{providerId}/extract/items": {
			"get": {
				"tags": [
					"extract"
				],
				"summary": "List the items of a provider",
				"operationId": "GetExtractItems",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "providerId",
						"in": "path",
						"required": true
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"type": "array",
						"collectionFormat": "multi",
						"items": {
							"type": "string",
							"enum": [
								"VALIDATION_PENDING",
								"PENDING",
								"IN_EXTRACT",
								"PROCESSED",
								"ARCHIVED",
								"REJECTED"
							]
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/ExtractItemResponse"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/providers/{providerId}/extract/orders/{orderId}/items/{itemId}/result": {
			"put": {
				"tags": [
					"extract"
				],
				"summary": "Deliver an item",
				"operationId": "UploadExtractResult",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "providerId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "itemId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/providers/{providerId}/extract/orders/{orderId}/items/{itemId}/reject": {
			"post": {
				"tags": [
					"extract"
				],
				"summary": "Reject an item",
				"operationId": "RejectExtractItem",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "providerId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "orderId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"format": "uuid",
						"name": "itemId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"Error": {
			"type": "object",
			"required": [
				"code",
				"message"
			],
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"CreatedResponse": {
			"type": "object",
			"required": [
				"id"
			],
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"Geometry": {
			"type": "object",
			"description": "GeoJSON geometry in the configured SRID",
			"required": [
				"type",
				"coordinates"
			],
			"properties": {
				"type": {
					"type": "string",
					"enum": [
						"Point",
						"Polygon",
						"MultiPolygon"
					]
				},
				"coordinates": {
					"type": "array",
					"items": {}
				}
			}
		},
		"CreateIdentityRequest": {
			"type": "object",
			"required": [
				"email"
			],
			"properties": {
				"email": {
					"type": "string",
					"format": "email"
				},
				"name": {
					"type": "string"
				},
				"company_name": {
					"type": "string"
				},
				"subscribed": {
					"type": "boolean"
				}
			}
		},
		"CreatePricingRequest": {
			"type": "object",
			"required": [
				"name",
				"code",
				"currency"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"code": {
					"type": "string",
					"enum": [
						"FREE",
						"SINGLE",
						"BY_NUMBER_OBJECTS",
						"BY_AREA",
						"FROM_PRICING_LAYER",
						"FROM_CHILDREN_OF_GROUP",
						"MANUAL"
					]
				},
				"currency": {
					"type": "string",
					"example": "CHF"
				},
				"base_fee": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"min_price": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"max_price": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"unit_price": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				}
			}
		},
		"AddPricingGeometryRequest": {
			"type": "object",
			"required": [
				"geometry"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"geometry": {
					"$ref": "#/definitions/Geometry"
				},
				"pricing_id": {
					"type": "string",
					"format": "uuid",
					"description": "omit to share the feature with every object-count pricing"
				},
				"unit_price": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"currency": {
					"type": "string"
				}
			}
		},
		"FormatRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"is_manual": {
					"type": "boolean"
				}
			}
		},
		"ContactRequest": {
			"type": "object",
			"required": [
				"identity_id"
			],
			"properties": {
				"identity_id": {
					"type": "string",
					"format": "uuid"
				},
				"email": {
					"type": "string",
					"format": "email"
				},
				"is_validator": {
					"type": "boolean"
				},
				"priority": {
					"type": "integer"
				}
			}
		},
		"MetadataRequest": {
			"type": "object",
			"required": [
				"id_name"
			],
			"properties": {
				"id_name": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"accessibility": {
					"type": "string",
					"enum": [
						"PUBLIC",
						"APPROVAL_NEEDED"
					]
				},
				"contacts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ContactRequest"
					}
				}
			}
		},
		"CreateProductRequest": {
			"type": "object",
			"required": [
				"label",
				"pricing_id",
				"status"
			],
			"properties": {
				"label": {
					"type": "string"
				},
				"pricing_id": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string",
					"enum": [
						"DRAFT",
						"PUBLISHED",
						"PUBLISHED_ONLY_IN_GROUP"
					]
				},
				"group_id": {
					"type": "string",
					"format": "uuid"
				},
				"free_when_subscribed": {
					"type": "boolean"
				},
				"geometry": {
					"$ref": "#/definitions/Geometry"
				},
				"provider_id": {
					"type": "string",
					"format": "uuid"
				},
				"formats": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/FormatRequest"
					}
				},
				"metadata": {
					"$ref": "#/definitions/MetadataRequest"
				}
			}
		},
		"CreateOrderRequest": {
			"type": "object",
			"required": [
				"client_id",
				"title",
				"geometry",
				"order_type"
			],
			"properties": {
				"client_id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string"
				},
				"geometry": {
					"$ref": "#/definitions/Geometry"
				},
				"order_type": {
					"type": "string",
					"example": "private"
				}
			}
		},
		"UpdateOrderRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"invoice_reference": {
					"type": "string"
				},
				"geometry": {
					"$ref": "#/definitions/Geometry"
				},
				"order_type": {
					"type": "string"
				},
				"invoice_contact_id": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"AddOrderItemRequest": {
			"type": "object",
			"required": [
				"product_id"
			],
			"properties": {
				"product_id": {
					"type": "string",
					"format": "uuid"
				},
				"format_id": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"SetItemFormatRequest": {
			"type": "object",
			"required": [
				"format_id"
			],
			"properties": {
				"format_id": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"QuoteItemRequest": {
			"type": "object",
			"required": [
				"price",
				"currency"
			],
			"properties": {
				"price": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"base_fee": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"currency": {
					"type": "string"
				}
			}
		},
		"OrderItemResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"product_id": {
					"type": "string",
					"format": "uuid"
				},
				"product_label": {
					"type": "string"
				},
				"format_id": {
					"type": "string",
					"format": "uuid"
				},
				"format_name": {
					"type": "string"
				},
				"price_status": {
					"type": "string",
					"enum": [
						"PENDING",
						"CALCULATED",
						"IMPORTED"
					]
				},
				"price": {
					"type": "string",
					"example": "150.00",
					"description": "absent while the price is pending"
				},
				"base_fee": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"status": {
					"type": "string",
					"enum": [
						"VALIDATION_PENDING",
						"PENDING",
						"IN_EXTRACT",
						"PROCESSED",
						"ARCHIVED",
						"REJECTED"
					]
				},
				"last_download": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"OrderResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"client_id": {
					"type": "string",
					"format": "uuid"
				},
				"invoice_contact_id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"invoice_reference": {
					"type": "string"
				},
				"order_type": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"DRAFT",
						"PENDING",
						"QUOTE_DONE",
						"READY",
						"IN_EXTRACT",
						"PARTIALLY_DELIVERED",
						"PROCESSED",
						"ARCHIVED",
						"REJECTED"
					]
				},
				"geometry": {
					"$ref": "#/definitions/Geometry"
				},
				"srid": {
					"type": "integer"
				},
				"currency": {
					"type": "string"
				},
				"processing_fee": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"total_without_vat": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"part_vat": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"total_with_vat": {
					"type": "string",
					"example": "150.00",
					"description": "decimal amount with two places"
				},
				"date_ordered": {
					"type": "string",
					"format": "date-time"
				},
				"date_processed": {
					"type": "string",
					"format": "date-time"
				},
				"date_downloaded": {
					"type": "string",
					"format": "date-time"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/OrderItemResponse"
					}
				}
			}
		},
		"ExtractJobResponse": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "string",
					"format": "uuid"
				},
				"item_id": {
					"type": "string",
					"format": "uuid"
				},
				"client_id": {
					"type": "string",
					"format": "uuid"
				},
				"product_id": {
					"type": "string",
					"format": "uuid"
				},
				"product_label": {
					"type": "string"
				},
				"format_id": {
					"type": "string",
					"format": "uuid"
				},
				"format_name": {
					"type": "string"
				},
				"is_manual": {
					"type": "boolean"
				},
				"geometry": {
					"$ref": "#/definitions/Geometry"
				}
			}
		},
		"ExtractItemResponse": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "string",
					"format": "uuid"
				},
				"order_title": {
					"type": "string"
				},
				"client_id": {
					"type": "string",
					"format": "uuid"
				},
				"date_ordered": {
					"type": "string",
					"format": "date-time"
				},
				"item_id": {
					"type": "string",
					"format": "uuid"
				},
				"product_id": {
					"type": "string",
					"format": "uuid"
				},
				"product_label": {
					"type": "string"
				},
				"format_name": {
					"type": "string"
				},
				"is_manual": {
					"type": "boolean"
				},
				"status": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Geoshop ordering API",
	Description:      "Order geographic data, get it priced and follow its extraction.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
