package entities

import "time"

// Product is the catalog entry a price refers to. The catalog itself is
// maintained elsewhere; this service only resolves products by id.
//
// Storage model (DynamoDB):
//   - PK: id

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Barcode   string    `json:"barcode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
