package handlers

import (
	"net/http"

	request "waste_pickup/internal/adapter/http/dto/request"
	response "waste_pickup/internal/adapter/http/dto/response"
	"waste_pickup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	usecase usecase.ISlotUseCase
}

func NewSlotHandler(uc usecase.ISlotUseCase) *SlotHandler {
	return &SlotHandler{usecase: uc}
}

// AvailableSlots godoc
// @Summary      List free hourly slots for a day
// @Tags         slots
// @Produce      json
// @Param        date      query  string  true   "Day (YYYY-MM-DD) in the slot timezone"
// @Param        category  query  string  false  "Waste category"
// @Success      200  {object}  response.AvailableSlotsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /slots/available [get]
func (h *SlotHandler) AvailableSlots(c *gin.Context) {
	var q request.AvailableSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	day, err := q.Day()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	slots, err := h.usecase.AvailableSlots(c.Request.Context(), day, q.WasteCategory())
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAvailableSlots(q.Date, q.WasteCategory(), slots))
}
