package records

import "time"

// StatusPending is the status of every newly inserted record.
const StatusPending = "pending"

// Record is one persisted report.
type Record struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	Score       int32     `json:"score"`
	Status      string    `json:"status"`
}

// NewRecord holds the caller-supplied fields of a record. ID and CreatedAt
// are assigned by the store.
type NewRecord struct {
	Latitude    float64
	Longitude   float64
	Description string
	Score       int32
	Status      string
}
