package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/service"
	"manisera/affirmation-app/internal/session"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler drives the affirmation sessions. The client performs speech
// recognition locally and posts final transcripts here.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- Request Structs ---

type TranscriptRequest struct {
	// Transcript is a final (not interim) recognition result.
	Transcript string `json:"transcript"`
	// EngineError reports a recognition engine failure instead of a result.
	EngineError string `json:"engineError,omitempty" binding:"omitempty,oneof=no-speech not-allowed unavailable aborted network audio-capture"`
}

// --- Handler Methods ---

// Start godoc
// @Summary Start (or resume) listening for a session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param day path int true "Program day (1-30)"
// @Param session path string true "Session type" Enums(morning, afternoon, evening)
// @Success 200 {object} service.SessionState
// @Failure 402 {object} gin.H "Premium required"
// @Failure 403 {object} gin.H "Locked or quota reached"
// @Failure 409 {object} gin.H "Session already complete"
// @Router /sessions/{day}/{session}/start [post]
func (h *SessionHandler) Start(c *gin.Context) {
	userID, day, st, ok := h.bindSessionPath(c)
	if !ok {
		return
	}

	state, err := h.sessionService.Start(c.Request.Context(), userID, day, st, getClientDate(c))
	if err != nil {
		h.handleSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Transcript godoc
// @Summary Submit a final transcript or an engine error
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path int true "Program day (1-30)"
// @Param session path string true "Session type" Enums(morning, afternoon, evening)
// @Param result body TranscriptRequest true "Final transcript or engine error"
// @Success 200 {object} service.TranscriptResult
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Session already complete"
// @Router /sessions/{day}/{session}/transcript [post]
func (h *SessionHandler) Transcript(c *gin.Context) {
	userID, day, st, ok := h.bindSessionPath(c)
	if !ok {
		return
	}

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Transcript == "" && req.EngineError == "" {
		abortWithError(c, http.StatusBadRequest, "Either transcript or engineError is required")
		return
	}

	result, err := h.sessionService.SubmitTranscript(
		c.Request.Context(), userID, day, st, getClientDate(c),
		req.Transcript, session.EngineErrorKind(req.EngineError),
	)
	if err != nil {
		h.handleSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Stop godoc
// @Summary Stop listening without losing progress
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param day path int true "Program day (1-30)"
// @Param session path string true "Session type" Enums(morning, afternoon, evening)
// @Success 200 {object} service.SessionState
// @Router /sessions/{day}/{session}/stop [post]
func (h *SessionHandler) Stop(c *gin.Context) {
	userID, day, st, ok := h.bindSessionPath(c)
	if !ok {
		return
	}

	state, err := h.sessionService.Stop(c.Request.Context(), userID, day, st)
	if err != nil {
		h.handleSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Get godoc
// @Summary Get the current state of a session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param day path int true "Program day (1-30)"
// @Param session path string true "Session type" Enums(morning, afternoon, evening)
// @Success 200 {object} service.SessionState
// @Router /sessions/{day}/{session} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	userID, day, st, ok := h.bindSessionPath(c)
	if !ok {
		return
	}

	state, err := h.sessionService.Get(c.Request.Context(), userID, day, st, getClientDate(c))
	if err != nil {
		h.handleSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// bindSessionPath resolves the authenticated user and the day/session path
// parameters, writing the error response itself on failure.
func (h *SessionHandler) bindSessionPath(c *gin.Context) (userID primitive.ObjectID, day int, st domain.SessionType, ok bool) {
	id, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	day, err = strconv.Atoi(c.Param("day"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid day parameter")
		return
	}

	st = domain.SessionType(c.Param("session"))
	if !st.IsValid() {
		abortWithError(c, http.StatusBadRequest, "Invalid session parameter")
		return
	}
	return id, day, st, true
}

// handleSessionError maps session service errors onto HTTP status codes.
func (h *SessionHandler) handleSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDay), errors.Is(err, service.ErrInvalidSession), errors.Is(err, service.ErrEmptyTranscript):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPremiumRequired):
		abortWithError(c, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, service.ErrDayLocked), errors.Is(err, service.ErrSessionLocked), errors.Is(err, service.ErrDailyQuotaReached):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSessionDone), errors.Is(err, session.ErrNotListening):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrRecognitionUnavailable), errors.Is(err, session.ErrMicrophoneDenied):
		// Client-side recognition failures are the client's to resolve; echo
		// them back as unprocessable rather than a server fault.
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		handleRepoError(c, err, "Session")
	}
}
