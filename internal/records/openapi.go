package records

import "github.com/JaimeStill/litterlens/pkg/openapi"

var topOp = &openapi.Operation{
	Summary:     "Top records",
	Description: "Returns the highest-scoring records, score descending.",
	Parameters: []*openapi.Parameter{
		openapi.QueryParam("limit", "integer", "Maximum rows; out-of-range values use the default", false),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Records by score", "TopResponse"),
		500: openapi.ResponseJSON("Store failure, empty list", "TopResponse"),
	},
}

// Schemas returns the OpenAPI schemas of the record endpoints.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Record": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "integer", Format: "int64"},
				"created_at":  {Type: "string", Format: "date-time"},
				"latitude":    {Type: "number", Format: "double"},
				"longitude":   {Type: "number", Format: "double"},
				"description": {Type: "string", Example: "Reported litter classified as Organic"},
				"score":       {Type: "integer", Format: "int32"},
				"status":      {Type: "string", Example: StatusPending},
			},
		},
		"TopResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"records": {Type: "array", Items: openapi.SchemaRef("Record")},
			},
		},
	}
}
