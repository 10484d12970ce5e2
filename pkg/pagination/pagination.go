package pagination

import (
	"net/url"
	"strconv"
)

// Normalize returns limit when it lies in [1, MaxLimit], otherwise DefaultLimit.
func (c Config) Normalize(limit int) int {
	if limit < 1 || limit > c.MaxLimit {
		return c.DefaultLimit
	}
	return limit
}

// LimitFromQuery reads the "limit" query parameter. Missing, non-numeric,
// and out-of-range values fall back to the default.
func LimitFromQuery(values url.Values, cfg Config) int {
	limit, err := strconv.Atoi(values.Get("limit"))
	if err != nil {
		return cfg.DefaultLimit
	}
	return cfg.Normalize(limit)
}
