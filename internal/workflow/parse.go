package workflow

import (
	"fmt"
	"strconv"
	"strings"
)

var categoryKeys = map[string]Category{
	"hazardous":     Hazardous,
	"nonrecyclable": NonRecyclable,
	"recyclable":    Recyclable,
	"organic":       Organic,
}

// ParseScore reads a score from model output. After trimming whitespace the
// whole text must be a base-10 unsigned integer that fits in 16 bits.
func ParseScore(text string) (Score, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty score", ErrParse)
	}

	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: score %q is not an integer in [0, 65535]", ErrParse, s)
	}
	return Score(n), nil
}

// ParseCategory reads a category label from model output. Matching ignores
// case, inner spaces, hyphens, underscores, and a trailing period.
func ParseCategory(text string) (Category, error) {
	s := strings.TrimSpace(text)
	key := strings.ToLower(strings.TrimSuffix(s, "."))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)

	c, ok := categoryKeys[key]
	if !ok {
		return "", fmt.Errorf("%w: unknown category %q", ErrParse, s)
	}
	return c, nil
}
