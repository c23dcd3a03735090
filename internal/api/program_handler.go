package api

import (
	"errors"
	"net/http"
	"strconv"

	"manisera/affirmation-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler serves the derived 30-day program views.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// GetOverview godoc
// @Summary Get the 30-day program overview
// @Description Returns completion and lock state for every program day.
// @Tags Program
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProgramOverview
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /program/days [get]
func (h *ProgramHandler) GetOverview(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	overview, err := h.programService.GetOverview(c.Request.Context(), userID, getClientDate(c))
	if err != nil {
		handleRepoError(c, err, "Program")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetDay godoc
// @Summary Get one program day
// @Description Returns the day's sessions with affirmations, context messages
// @Description and lock state. Requests for a locked day are clamped to the
// @Description allowed day and answered with the gate state.
// @Tags Program
// @Produce json
// @Security BearerAuth
// @Param day path int true "Program day (1-30)"
// @Success 200 {object} service.DayDetail
// @Failure 400 {object} gin.H "Invalid day"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /program/days/{day} [get]
func (h *ProgramHandler) GetDay(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid day parameter")
		return
	}

	detail, err := h.programService.GetDay(c.Request.Context(), userID, day, getClientDate(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDay) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		handleRepoError(c, err, "Program day")
		return
	}
	c.JSON(http.StatusOK, detail)
}
