package prompts

import "github.com/JaimeStill/litterlens/pkg/openapi"

var stageParam = &openapi.Parameter{
	Name:     "stage",
	In:       "path",
	Required: true,
	Schema:   &openapi.Schema{Type: "string", Enum: []any{StageScore, StageCategory}},
}

var stagesOp = &openapi.Operation{
	Summary: "Classification stages",
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Stage names in evaluation order",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}},
			},
		},
	},
}

var instructionsOp = &openapi.Operation{
	Summary:    "Effective instructions for a stage",
	Parameters: []*openapi.Parameter{stageParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Instructions", "StageContent"),
		400: openapi.ResponseRef("BadRequest"),
	},
}

var specOp = &openapi.Operation{
	Summary:    "Output format constraints for a stage",
	Parameters: []*openapi.Parameter{stageParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Output spec", "StageContent"),
		400: openapi.ResponseRef("BadRequest"),
	},
}

// Schemas returns the OpenAPI schemas of the prompt endpoints.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"StageContent": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"stage":   {Type: "string"},
				"content": {Type: "string"},
			},
		},
	}
}
