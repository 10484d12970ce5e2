package prompts

const scoreInstructions = `Is there trash in this image? This is meant for a trash detection model. Give the scene a cleanliness score between 0 and 100, with 100 being covered in trash and 0 being extremely clean.`

const categoryInstructions = `Is there trash in this image? This is meant for a trash detection model. Decide which kind of waste dominates the scene: Hazardous, NonRecyclable, Recyclable, or Organic.`

var instructions = map[Stage]string{
	StageScore:    scoreInstructions,
	StageCategory: categoryInstructions,
}

// Instructions returns the default instructions for a stage.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
