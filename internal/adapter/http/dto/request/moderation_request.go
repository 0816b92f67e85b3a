package request

// ModerationRequest is the PATCH /prices/:id/moderation payload.

type ModerationRequest struct {
	Status string `json:"status" binding:"required"`
}
