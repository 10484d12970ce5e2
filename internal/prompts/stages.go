package prompts

import (
	"encoding/json"
	"slices"
)

// Stage identifies one of the two classification calls made per report.
type Stage string

const (
	StageScore    Stage = "score"
	StageCategory Stage = "category"
)

var stages = []Stage{
	StageScore,
	StageCategory,
}

// Stages returns the valid stages in evaluation order.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStage(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known stage.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
