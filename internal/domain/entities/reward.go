package entities

import "time"

// Reward is an immutable point grant created when an eligible request completes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id / created_at
type Reward struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RequestID string    `json:"request_id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type RewardSummary struct {
	TotalPoints int      `json:"total_points"`
	Recent      []Reward `json:"recent"`
}
