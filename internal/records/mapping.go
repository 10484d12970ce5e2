package records

import (
	"github.com/JaimeStill/litterlens/pkg/query"
	"github.com/JaimeStill/litterlens/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "records", "r").
	Project("id", "ID").
	Project("created_at", "CreatedAt").
	Project("latitude", "Latitude").
	Project("longitude", "Longitude").
	Project("description", "Description").
	Project("score", "Score").
	Project("status", "Status")

// Ties on score come back in store order.
var topSort = query.SortField{
	Field:      "Score",
	Descending: true,
}

func scanRecord(s repository.Scanner) (Record, error) {
	var r Record
	err := s.Scan(
		&r.ID,
		&r.CreatedAt,
		&r.Latitude,
		&r.Longitude,
		&r.Description,
		&r.Score,
		&r.Status,
	)
	return r, err
}
