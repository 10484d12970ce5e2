package openapi

import "maps"

var errorBody = map[string]*MediaType{
	"application/json": {
		Schema: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"error": {Type: "string", Description: "Error message"},
			},
		},
	},
}

// NewComponents creates Components with the shared error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{},
		Responses: map[string]*Response{
			"BadRequest":    {Description: "Invalid request", Content: errorBody},
			"NotFound":      {Description: "Resource not found", Content: errorBody},
			"InternalError": {Description: "Unexpected server failure", Content: errorBody},
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}
