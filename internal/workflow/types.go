package workflow

import "github.com/JaimeStill/litterlens/internal/prompts"

// Score is the parsed cleanliness score. Values are expected in [0, 100]
// but anything that fits 16 bits is accepted.
type Score uint16

// Category is one of the closed set of waste labels.
type Category string

const (
	Hazardous     Category = "Hazardous"
	NonRecyclable Category = "NonRecyclable"
	Recyclable    Category = "Recyclable"
	Organic       Category = "Organic"
)

// Categories returns the valid labels.
func Categories() []Category {
	return []Category{Hazardous, NonRecyclable, Recyclable, Organic}
}

// Input is one image to classify.
type Input struct {
	TraceID string
	Image   []byte
}

// Result holds both validated classifications of a single image.
type Result struct {
	Score    Score
	Category Category
}

// callResult is the raw outcome of one classification call, read by stage
// rather than by completion order.
type callResult struct {
	Stage prompts.Stage
	Text  string
	Err   error
}
