package entities

import "time"

// Store is a physical store where prices are captured. Store administration
// is out of scope; the pipeline resolves stores by id and lists them for the
// client's local cache refresh.
//
// Storage model (DynamoDB):
//   - PK: id

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
