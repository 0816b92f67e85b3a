package entities

import "time"

// Device identifies an installation of the capture client. Devices are
// registered lazily, as a side effect of their first successful price
// submission.
//
// Storage model (DynamoDB):
//   - PK: id

type Device struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeviceUsage is the device registry listing row: the device plus how many
// prices it has submitted and when it was last seen submitting.

type DeviceUsage struct {
	Device
	SubmissionsCount int        `json:"submissionsCount"`
	LastUsedAt       *time.Time `json:"lastUsedAt,omitempty"`
}
