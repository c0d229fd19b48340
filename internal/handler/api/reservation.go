package api

import (
	"net/http"

	reqdto "campsite-reservation/internal/handler/dto/request"
	resdto "campsite-reservation/internal/handler/dto/response"
	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Find availability
// @Description List the free date ranges of the campsite. Without bounds the search starts today and spans the default window.
// @Tags reservations
// @Produce json
// @Param from query string false "First night (YYYY-MM-DD)"
// @Param to query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations/availability [get]
func (h *ReservationHandler) FindAvailability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindingError(c, http.StatusBadRequest, err)
		return
	}
	q, err := req.ToQuery()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	availability, err := h.q.FindAvailability(c.Request.Context(), q)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary Make reservation
// @Description Book the campsite for a date range
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationCreatedResponse
// @Header 201 {string} Location "URL of the new reservation"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, http.StatusBadRequest, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.MakeReservation(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", c.FullPath()+"/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.ReservationCreatedResponse{ID: result.BookingID})
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.q.GetReservation(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Modify reservation
// @Description Replace the date range of a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DateRangeRequest true "New date range"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Modify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, http.StatusBadRequest, err)
		return
	}
	r, err := req.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	b, err := h.cmds.ModifyReservation(c.Request.Context(), id, r)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Cancel reservation
// @Description Cancel a reservation and release its dates
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.InternalMessage, nil)
	}
}
