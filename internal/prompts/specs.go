package prompts

const scoreSpec = `ONLY OUTPUT THE SCORE.
Respond with a single base-10 integer and nothing else: no words, no units, no percent sign, no punctuation.`

const categorySpec = `ONLY OUTPUT THE CATEGORY.
Respond with exactly one of these labels and nothing else:
Hazardous
NonRecyclable
Recyclable
Organic`

var specs = map[Stage]string{
	StageScore:    scoreSpec,
	StageCategory: categorySpec,
}

// Spec returns the output format constraints for a stage. Specs are fixed so
// the response parser can rely on them; only instructions are configurable.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
