package response

import (
	"time"

	"waste_pickup/internal/domain/entities"
)

type RewardResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type RewardSummaryResponse struct {
	TotalPoints int              `json:"total_points"`
	Recent      []RewardResponse `json:"recent"`
}

func FromRewardSummary(s entities.RewardSummary) RewardSummaryResponse {
	recent := make([]RewardResponse, 0, len(s.Recent))
	for _, r := range s.Recent {
		recent = append(recent, RewardResponse{
			ID:        r.ID,
			RequestID: r.RequestID,
			Points:    r.Points,
			Reason:    r.Reason,
			CreatedAt: r.CreatedAt,
		})
	}
	return RewardSummaryResponse{TotalPoints: s.TotalPoints, Recent: recent}
}
