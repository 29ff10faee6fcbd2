package handlers

import (
	"net/http"

	response "waste_pickup/internal/adapter/http/dto/response"
	"waste_pickup/internal/adapter/http/middleware"
	"waste_pickup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	usecase usecase.IRewardUseCase
}

func NewRewardHandler(uc usecase.IRewardUseCase) *RewardHandler {
	return &RewardHandler{usecase: uc}
}

// Summary godoc
// @Summary      Reward points of the caller
// @Tags         rewards
// @Produce      json
// @Success      200  {object}  response.RewardSummaryResponse
// @Security     Bearer
// @Router       /rewards/summary [get]
func (h *RewardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRewardSummary(summary))
}
