package reports

import "github.com/JaimeStill/litterlens/pkg/openapi"

var responseBody = &openapi.Response{
	Description: "Outcome or failure message",
	Content: map[string]*openapi.MediaType{
		"application/json": {Schema: openapi.SchemaRef("Response")},
	},
}

var indexOp = &openapi.Operation{
	Summary:   "Liveness message",
	Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Service is running", "Response")},
}

var reportOp = &openapi.Operation{
	Summary:     "Submit a litter report",
	Description: "Classifies the image with a cleanliness score and a waste category, then stores the report.",
	RequestBody: openapi.RequestBodyJSON("ReportRequest", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Report classified and saved", "Response"),
		206: openapi.ResponseJSON("Report classified but not saved", "Response"),
		400: responseBody,
		413: responseBody,
		500: responseBody,
	},
}

var imageOp = &openapi.Operation{
	Summary:    "Archived report image",
	Parameters: []*openapi.Parameter{openapi.PathParam("id", "integer", "Report id")},
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Image bytes",
			Content:     map[string]*openapi.MediaType{"image/*": {}},
		},
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
	},
}

// Schemas returns the OpenAPI schemas of the report endpoints.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"ReportRequest": {
			Type:     "object",
			Required: []string{"image", "latitude", "longitude"},
			Properties: map[string]*openapi.Schema{
				"image": {
					Type:        "string",
					Format:      "byte",
					Description: "Base64 image, optionally as a data URI",
				},
				"latitude": {
					Type:    "number",
					Format:  "double",
					Minimum: openapi.Bound(-90),
					Maximum: openapi.Bound(90),
				},
				"longitude": {
					Type:    "number",
					Format:  "double",
					Minimum: openapi.Bound(-180),
					Maximum: openapi.Bound(180),
				},
			},
		},
		"Response": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"response": {Type: "string", Example: "report 7 saved with score 42 and category Organic"},
			},
		},
	}
}
