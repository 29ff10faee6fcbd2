package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "waste_pickup/internal/adapter/http/dto/request"
	response "waste_pickup/internal/adapter/http/dto/response"
	"waste_pickup/internal/adapter/http/middleware"
	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PickupRequestHandler exposes the citizen request lifecycle and the
// operator status endpoint.
type PickupRequestHandler struct {
	usecase usecase.IPickupRequestUseCase
}

func NewPickupRequestHandler(uc usecase.IPickupRequestUseCase) *PickupRequestHandler {
	return &PickupRequestHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a pickup request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePickupRequest  true  "Request"
// @Success      201   {object}  response.PickupRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests [post]
func (h *PickupRequestHandler) Create(c *gin.Context) {
	var payload request.CreatePickupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPickupRequest(created))
}

// List godoc
// @Summary      List the caller's pickup requests
// @Tags         requests
// @Produce      json
// @Param        status    query  string  false  "Status filter"
// @Param        category  query  string  false  "Category filter"
// @Param        skip      query  int     false  "Offset"
// @Param        limit     query  int     false  "Page size (max 100)"
// @Success      200  {object}  response.PickupRequestListResponse
// @Security     Bearer
// @Router       /requests [get]
func (h *PickupRequestHandler) List(c *gin.Context) {
	var q request.ListPickupRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	page, err := h.usecase.List(c.Request.Context(), middleware.UserID(c), q.ToFilter())
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestPage(page))
}

// Get godoc
// @Summary      Get a pickup request
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.PickupRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id} [get]
func (h *PickupRequestHandler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK, func(ctx context.Context) (entities.PickupRequest, error) {
		return h.usecase.Get(ctx, c.Param("id"), middleware.UserID(c))
	})
}

// Submit godoc
// @Summary      Submit a draft request
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.PickupRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/submit [post]
func (h *PickupRequestHandler) Submit(c *gin.Context) {
	h.respond(c, http.StatusOK, func(ctx context.Context) (entities.PickupRequest, error) {
		return h.usecase.Submit(ctx, c.Param("id"), middleware.UserID(c))
	})
}

// Cancel godoc
// @Summary      Cancel a request
// @Description  Allowed from draft, submitted or scheduled, and not within 24h of the assigned slot.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true   "Request ID"
// @Param        body  body      request.CancelPickupRequest   false  "Reason"
// @Success      200   {object}  response.PickupRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/cancel [post]
func (h *PickupRequestHandler) Cancel(c *gin.Context) {
	var payload request.CancelPickupRequest
	// The body is optional.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context) (entities.PickupRequest, error) {
		return h.usecase.Cancel(ctx, c.Param("id"), middleware.UserID(c), payload.Reason)
	})
}

// ConfirmSlot godoc
// @Summary      Confirm a pickup slot
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Request ID"
// @Param        body  body      request.ConfirmSlotRequest  true  "Slot"
// @Success      200   {object}  response.PickupRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/confirm-slot [post]
func (h *PickupRequestHandler) ConfirmSlot(c *gin.Context) {
	var payload request.ConfirmSlotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	window, err := payload.ToWindow()
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context) (entities.PickupRequest, error) {
		return h.usecase.ConfirmSlot(ctx, c.Param("id"), middleware.UserID(c), window)
	})
}

// AddNote godoc
// @Summary      Append a note to a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Request ID"
// @Param        body  body      request.NoteRequest  true  "Note"
// @Success      200   {object}  response.PickupRequestResponse
// @Security     Bearer
// @Router       /requests/{id}/notes [post]
func (h *PickupRequestHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context) (entities.PickupRequest, error) {
		return h.usecase.AddNote(ctx, c.Param("id"), middleware.UserID(c), payload.Text)
	})
}

// Transition godoc
// @Summary      Move a request to a new status
// @Description  Operator, vendor or admin only.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Request ID"
// @Param        body  body      request.TransitionRequest  true  "Target status"
// @Success      200   {object}  response.PickupRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/status [post]
func (h *PickupRequestHandler) Transition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context) (entities.PickupRequest, error) {
		return h.usecase.Transition(ctx, c.Param("id"), payload.Target(), middleware.UserID(c))
	})
}

func (h *PickupRequestHandler) respond(c *gin.Context, status int, op func(ctx context.Context) (entities.PickupRequest, error)) {
	r, err := op(c.Request.Context())
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(status, response.FromPickupRequest(r))
}
